package animations

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Instance is a playback cursor over a shared Template. It is owned by a
// single entity and is never shared.
type Instance struct {
	template *Template
	frame    int
	elapsed  time.Duration
	playing  bool
}

// NewInstance returns a playing instance positioned on the first frame.
func NewInstance(t *Template) *Instance {
	if t == nil {
		panic("animations: NewInstance called with a nil template")
	}
	return &Instance{template: t, playing: true}
}

func (a *Instance) Template() *Template {
	return a.template
}

// Start rewinds to the first frame and plays.
func (a *Instance) Start() {
	a.frame = 0
	a.elapsed = 0
	a.playing = true
}

// Stop freezes the instance on its current frame.
func (a *Instance) Stop() {
	a.playing = false
}

func (a *Instance) Playing() bool {
	return a.playing
}

func (a *Instance) Frame() int {
	return a.frame
}

// Elapsed is the time spent on the current frame.
func (a *Instance) Elapsed() time.Duration {
	return a.elapsed
}

// Update advances playback by dt. Several frames may be consumed in one call
// after a stall; a non-looping animation stops on its last frame.
func (a *Instance) Update(dt time.Duration) {
	if !a.playing || a.template == nil || len(a.template.frames) == 0 {
		return
	}

	a.elapsed += dt
	for a.elapsed >= a.template.frames[a.frame].Duration {
		a.elapsed -= a.template.frames[a.frame].Duration

		if a.frame < len(a.template.frames)-1 {
			a.frame++
			continue
		}

		if a.template.loop {
			a.frame = 0
			continue
		}

		a.playing = false
		a.elapsed = 0
		return
	}
}

// Image returns the image of the current frame, or nil when there is none.
func (a *Instance) Image() *ebiten.Image {
	if a == nil || a.template == nil || len(a.template.frames) == 0 {
		return nil
	}
	return a.template.frames[a.frame].Image
}

// Size returns the pixel size of the current frame image, or zero.
func (a *Instance) Size() (int, int) {
	img := a.Image()
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
