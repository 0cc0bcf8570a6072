package animations

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrNoFrames        = errors.New("animation has no frames")
	ErrInvalidDuration = errors.New("frame duration must be positive")
)

// Frame is a single image shown for Duration.
type Frame struct {
	Image    *ebiten.Image
	Duration time.Duration
}

// Template is an immutable frame sequence shared by every Instance that plays it.
type Template struct {
	name   string
	frames []Frame
	loop   bool
	total  time.Duration
}

// NewTemplate copies frames into a new Template. A nil frame image is allowed
// and renders as nothing; an empty sequence or a non-positive duration is not.
func NewTemplate(name string, frames []Frame, loop bool) (*Template, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("template %q: %w", name, ErrNoFrames)
	}

	t := &Template{
		name:   name,
		frames: make([]Frame, len(frames)),
		loop:   loop,
	}
	for i, f := range frames {
		if f.Duration <= 0 {
			return nil, fmt.Errorf("template %q frame %d (%v): %w", name, i, f.Duration, ErrInvalidDuration)
		}
		t.frames[i] = f
		t.total += f.Duration
	}
	return t, nil
}

// MustTemplate is NewTemplate for statically known frame data.
func MustTemplate(name string, frames []Frame, loop bool) *Template {
	t, err := NewTemplate(name, frames, loop)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Template) Name() string {
	return t.name
}

func (t *Template) Loop() bool {
	return t.loop
}

func (t *Template) Len() int {
	return len(t.frames)
}

// Frame returns the i-th frame by value.
func (t *Template) Frame(i int) Frame {
	return t.frames[i]
}

// TotalDuration is the sum of all frame durations.
func (t *Template) TotalDuration() time.Duration {
	return t.total
}

// Equal reports whether both templates describe the same frame sequence.
func (t *Template) Equal(other *Template) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.name != other.name || t.loop != other.loop || len(t.frames) != len(other.frames) {
		return false
	}
	for i := range t.frames {
		if t.frames[i] != other.frames[i] {
			return false
		}
	}
	return true
}
