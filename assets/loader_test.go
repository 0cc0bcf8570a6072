package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
	"time"

	"github.com/automoto/blaster/config"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestLoaderSlicesSheets(t *testing.T) {
	fsys := fstest.MapFS{
		"sheets/ship.png": {Data: pngBytes(t, 64, 16)},
	}
	defs := map[string]config.AnimationDef{
		"ship": {Sheet: "sheets/ship.png", FrameWidth: 16, FrameHeight: 16, Frames: 4, FrameDuration: 100 * time.Millisecond, Loop: true},
	}

	lib, err := NewLoader(fsys).Load(defs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tmpl, ok := lib.Get("ship")
	if !ok {
		t.Fatal("expected template ship")
	}
	if tmpl.Len() != 4 || !tmpl.Loop() {
		t.Errorf("expected 4 looping frames, got %d loop=%v", tmpl.Len(), tmpl.Loop())
	}
	for i := 0; i < tmpl.Len(); i++ {
		f := tmpl.Frame(i)
		if f.Image == nil || f.Image.Bounds().Dx() != 16 || f.Image.Bounds().Dy() != 16 {
			t.Errorf("frame %d has wrong size", i)
		}
		if f.Duration != 100*time.Millisecond {
			t.Errorf("frame %d has duration %v", i, f.Duration)
		}
	}
}

func TestLoaderFallsBackToPlaceholders(t *testing.T) {
	fsys := fstest.MapFS{
		"small.png": {Data: pngBytes(t, 8, 8)},
	}
	defs := map[string]config.AnimationDef{
		"missing":  {Sheet: "nope.png", FrameWidth: 10, FrameHeight: 12, Frames: 3, FrameDuration: 50 * time.Millisecond},
		"tooSmall": {Sheet: "small.png", FrameWidth: 8, FrameHeight: 8, Frames: 2, FrameDuration: 50 * time.Millisecond},
	}

	lib, err := NewLoader(fsys).Load(defs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	missing, _ := lib.Get("missing")
	if missing.Len() != 3 || missing.Frame(0).Image.Bounds().Dx() != 10 || missing.Frame(0).Image.Bounds().Dy() != 12 {
		t.Error("expected placeholder frames with the defined size")
	}
	small, _ := lib.Get("tooSmall")
	if small.Len() != 2 {
		t.Errorf("expected 2 placeholder frames, got %d", small.Len())
	}
}

func TestLoaderDefaultDefinitions(t *testing.T) {
	lib, err := NewLoader(nil).Load(config.Animations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lib.Len() != len(config.Animations) {
		t.Errorf("expected %d templates, got %d", len(config.Animations), lib.Len())
	}
	explosion := lib.MustGet("explosion")
	if explosion.Loop() {
		t.Error("expected the explosion to play once")
	}
}

func TestLoaderRejectsBadDefinition(t *testing.T) {
	defs := map[string]config.AnimationDef{
		"broken": {Sheet: "x.png", FrameWidth: 8, FrameHeight: 8, Frames: 0},
	}
	if _, err := NewLoader(nil).Load(defs); err == nil {
		t.Error("expected an error for a definition without frames")
	}
	defs = map[string]config.AnimationDef{
		"zero": {Sheet: "x.png", FrameWidth: 8, FrameHeight: 8, Frames: 2, FrameDuration: 0},
	}
	if _, err := NewLoader(nil).Load(defs); err == nil {
		t.Error("expected an error for zero frame duration")
	}
}
