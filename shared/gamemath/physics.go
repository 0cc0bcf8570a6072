package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampAxis clamps v into [lo, hi]. When hi < lo the lower bound wins.
// The second result reports whether v was moved.
func ClampAxis(v, lo, hi float64) (float64, bool) {
	if v > hi {
		v = hi
		if v < lo {
			v = lo
		}
		return v, true
	}
	if v < lo {
		return lo, true
	}
	return v, false
}

// AimVelocity returns a velocity of the given speed pointing from (fromX, fromY)
// to (toX, toY). Inputs are screen coordinates (+y down), the result is
// Cartesian (+y up). ok is false when the points coincide.
func AimVelocity(fromX, fromY, toX, toY, speed float64) (vx, vy float64, ok bool) {
	dx := toX - fromX
	dy := fromY - toY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, false
	}
	return dx / dist * speed, dy / dist * speed, true
}

// Normalize8 scales a digital direction so diagonals are not faster than
// straight moves.
func Normalize8(dx, dy float64) (float64, float64) {
	if dx != 0 && dy != 0 {
		return dx * math.Sqrt2 / 2, dy * math.Sqrt2 / 2
	}
	return dx, dy
}
