package animations

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func uniformFrames(n int, d time.Duration) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = Frame{Image: ebiten.NewImage(8+i, 8), Duration: d}
	}
	return frames
}

func TestNewTemplateRejectsInvalidFrames(t *testing.T) {
	if _, err := NewTemplate("empty", nil, true); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}

	frames := []Frame{{Duration: 10 * time.Millisecond}, {Duration: 0}}
	if _, err := NewTemplate("zero", frames, true); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}

	frames[1].Duration = -time.Millisecond
	if _, err := NewTemplate("negative", frames, true); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration for negative duration, got %v", err)
	}
}

func TestTemplateCopiesFrames(t *testing.T) {
	frames := uniformFrames(2, 50*time.Millisecond)
	tmpl := MustTemplate("copy", frames, false)

	frames[0].Duration = time.Hour
	if tmpl.Frame(0).Duration != 50*time.Millisecond {
		t.Errorf("template frame mutated through caller slice: %v", tmpl.Frame(0).Duration)
	}
	if tmpl.TotalDuration() != 100*time.Millisecond {
		t.Errorf("expected total 100ms, got %v", tmpl.TotalDuration())
	}
}

func TestTemplateEqual(t *testing.T) {
	frames := uniformFrames(3, 40*time.Millisecond)
	a := MustTemplate("walk", frames, true)
	b := MustTemplate("walk", frames, true)
	c := MustTemplate("walk", frames, false)

	if !a.Equal(b) {
		t.Error("templates built from the same frames should be equal")
	}
	if a.Equal(c) {
		t.Error("templates with different loop flags should differ")
	}
	if a.Equal(nil) {
		t.Error("template should not equal nil")
	}
}

func TestLoopingIndexAfterWholeFrames(t *testing.T) {
	const n = 4
	const d = 100 * time.Millisecond
	tmpl := MustTemplate("loop", uniformFrames(n, d), true)

	for k := 0; k <= 13; k++ {
		inst := NewInstance(tmpl)
		inst.Update(time.Duration(k) * d)
		if inst.Frame() != k%n {
			t.Errorf("k=%d: expected frame %d, got %d", k, k%n, inst.Frame())
		}
		if !inst.Playing() {
			t.Errorf("k=%d: looping instance stopped", k)
		}
	}
}

func TestLoopingIndexIndependentOfCallGranularity(t *testing.T) {
	const d = 100 * time.Millisecond
	tmpl := MustTemplate("loop", uniformFrames(4, d), true)
	inst := NewInstance(tmpl)

	for i := 0; i < 70; i++ {
		inst.Update(10 * time.Millisecond)
	}
	if inst.Frame() != 3 {
		t.Errorf("expected frame 3 after 700ms, got %d", inst.Frame())
	}
	if inst.Elapsed() != 0 {
		t.Errorf("expected no leftover time, got %v", inst.Elapsed())
	}
}

func TestNonLoopingHoldsLastFrame(t *testing.T) {
	const n = 5
	tmpl := MustTemplate("explode", uniformFrames(n, 30*time.Millisecond), false)

	for _, total := range []time.Duration{tmpl.TotalDuration(), tmpl.TotalDuration() + time.Second} {
		inst := NewInstance(tmpl)
		inst.Update(total)
		if inst.Playing() {
			t.Errorf("total=%v: expected instance to be stopped", total)
		}
		if inst.Frame() != n-1 {
			t.Errorf("total=%v: expected last frame %d, got %d", total, n-1, inst.Frame())
		}

		inst.Update(time.Second)
		if inst.Frame() != n-1 {
			t.Errorf("total=%v: stopped instance advanced to %d", total, inst.Frame())
		}
	}
}

func TestUpdateDrainsStalledTime(t *testing.T) {
	tmpl := MustTemplate("scenario", uniformFrames(4, 100*time.Millisecond), true)
	inst := NewInstance(tmpl)

	inst.Update(250 * time.Millisecond)

	if inst.Frame() != 2 {
		t.Errorf("expected frame 2, got %d", inst.Frame())
	}
	if inst.Elapsed() != 50*time.Millisecond {
		t.Errorf("expected 50ms into frame, got %v", inst.Elapsed())
	}
}

func TestStartStop(t *testing.T) {
	tmpl := MustTemplate("cycle", uniformFrames(3, 10*time.Millisecond), true)
	inst := NewInstance(tmpl)

	inst.Update(25 * time.Millisecond)
	inst.Stop()
	frozen := inst.Frame()
	inst.Update(time.Second)
	if inst.Frame() != frozen || inst.Playing() {
		t.Fatalf("stopped instance moved from %d to %d", frozen, inst.Frame())
	}

	inst.Start()
	if inst.Frame() != 0 || inst.Elapsed() != 0 || !inst.Playing() {
		t.Errorf("Start should rewind: frame=%d elapsed=%v playing=%v", inst.Frame(), inst.Elapsed(), inst.Playing())
	}
}

func TestImageAndSize(t *testing.T) {
	tmpl := MustTemplate("sized", uniformFrames(2, 10*time.Millisecond), true)
	inst := NewInstance(tmpl)

	if w, h := inst.Size(); w != 8 || h != 8 {
		t.Errorf("expected 8x8, got %dx%d", w, h)
	}
	inst.Update(10 * time.Millisecond)
	if w, _ := inst.Size(); w != 9 {
		t.Errorf("expected width 9 on second frame, got %d", w)
	}

	missing := NewInstance(MustTemplate("missing", []Frame{{Duration: time.Millisecond}}, true))
	if missing.Image() != nil {
		t.Error("expected nil image for frame without one")
	}
	if w, h := missing.Size(); w != 0 || h != 0 {
		t.Errorf("expected zero size, got %dx%d", w, h)
	}

	var none *Instance
	if none.Image() != nil {
		t.Error("nil instance should report no image")
	}
}

func TestNewInstancePanicsOnNilTemplate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil template")
		}
	}()
	NewInstance(nil)
}

func TestLibrary(t *testing.T) {
	lib := NewLibrary()
	lib.Add(MustTemplate("b", uniformFrames(1, time.Millisecond), true))
	lib.Add(MustTemplate("a", uniformFrames(1, time.Millisecond), true))

	if names := lib.Names(); len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected names %v", names)
	}
	if lib.NewInstance("") != nil {
		t.Error("empty name should yield no instance")
	}

	a1 := lib.NewInstance("a")
	a2 := lib.NewInstance("a")
	if a1 == a2 || a1.Template() != a2.Template() {
		t.Error("instances should be distinct but share the template")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected MustGet to panic for unknown key")
		}
	}()
	lib.MustGet("missing")
}
