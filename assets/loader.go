package assets

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"
	"log"
	"sort"

	"github.com/automoto/blaster/assets/animations"
	"github.com/automoto/blaster/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Loader builds animation templates from sprite sheets. Sheets that cannot be
// read are replaced with generated placeholder frames.
type Loader struct {
	fsys  fs.FS // nil means placeholders only
	cache map[string]*ebiten.Image
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *Loader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}
	if l.fsys == nil {
		return nil, fmt.Errorf("no asset directory for %s: %w", path, fs.ErrNotExist)
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create image from bytes for %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// Load builds one template per definition.
func (l *Loader) Load(defs map[string]config.AnimationDef) (*animations.Library, error) {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	lib := animations.NewLibrary()
	for _, name := range names {
		def := defs[name]
		frames, err := l.frames(name, def)
		if err != nil {
			return nil, err
		}
		t, err := animations.NewTemplate(name, frames, def.Loop)
		if err != nil {
			return nil, fmt.Errorf("animation %s: %w", name, err)
		}
		lib.Add(t)
	}
	return lib, nil
}

func (l *Loader) frames(name string, def config.AnimationDef) ([]animations.Frame, error) {
	if def.Frames <= 0 || def.FrameWidth <= 0 || def.FrameHeight <= 0 {
		return nil, fmt.Errorf("animation %s: frame count and size must be positive: %w", name, animations.ErrNoFrames)
	}

	sheet, err := l.LoadImage(def.Sheet)
	if err == nil {
		b := sheet.Bounds()
		if b.Dx() < def.Frames*def.FrameWidth || b.Dy() < def.FrameHeight {
			err = fmt.Errorf("sheet %s is %dx%d, too small for %d frames of %dx%d",
				def.Sheet, b.Dx(), b.Dy(), def.Frames, def.FrameWidth, def.FrameHeight)
		}
	}
	if err != nil {
		log.Printf("Warning: using placeholder frames for %s: %v", name, err)
		return placeholderFrames(def), nil
	}

	frames := make([]animations.Frame, def.Frames)
	min := sheet.Bounds().Min
	for i := range frames {
		sx := min.X + i*def.FrameWidth
		srcRect := image.Rect(sx, min.Y, sx+def.FrameWidth, min.Y+def.FrameHeight)
		frames[i] = animations.Frame{
			Image:    sheet.SubImage(srcRect).(*ebiten.Image),
			Duration: def.FrameDuration,
		}
	}
	return frames, nil
}

// placeholderFrames fills each frame with the definition's colour and a
// marker that steps across the frame, so playback stays visible.
func placeholderFrames(def config.AnimationDef) []animations.Frame {
	frames := make([]animations.Frame, def.Frames)
	marker := float32(def.FrameWidth) / float32(def.Frames+1)
	if marker < 1 {
		marker = 1
	}
	for i := range frames {
		img := ebiten.NewImage(def.FrameWidth, def.FrameHeight)
		img.Fill(def.Placeholder)
		vector.FillRect(img, float32(i)*marker, 0, marker, float32(def.FrameHeight)/4, config.White, false)
		frames[i] = animations.Frame{Image: img, Duration: def.FrameDuration}
	}
	return frames
}
