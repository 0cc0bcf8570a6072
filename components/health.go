package components

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
)

var (
	ErrHealthAboveMax = errors.New("health above maximum")
	ErrInvalidHealth  = errors.New("invalid health")
)

// HealthData holds hit points. 0 <= current <= max always holds.
type HealthData struct {
	current int
	max     int
}

func NewHealth(current, max int) (HealthData, error) {
	if max < 0 || current < 0 {
		return HealthData{}, fmt.Errorf("health %d/%d cannot be negative: %w", current, max, ErrInvalidHealth)
	}
	if current > max {
		return HealthData{}, fmt.Errorf("health %d/%d: %w", current, max, ErrHealthAboveMax)
	}
	return HealthData{current: current, max: max}, nil
}

func (h *HealthData) Current() int { return h.current }
func (h *HealthData) Max() int     { return h.max }

// Set replaces the current value. Values above max are rejected, negative
// values become 0.
func (h *HealthData) Set(v int) error {
	if v > h.max {
		return fmt.Errorf("set health to %d (max %d): %w", v, h.max, ErrHealthAboveMax)
	}
	if v < 0 {
		v = 0
	}
	h.current = v
	return nil
}

// SetMax panics if m is below the current value.
func (h *HealthData) SetMax(m int) {
	if m < h.current {
		panic(fmt.Sprintf("max health %d below current health %d", m, h.current))
	}
	h.max = m
}

func (h *HealthData) Damage(n int) {
	h.current -= n
	if h.current < 0 {
		h.current = 0
	}
}

func (h *HealthData) Heal(n int) {
	h.current += n
	if h.current > h.max {
		h.current = h.max
	}
}

func (h *HealthData) Dead() bool {
	return h.current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
