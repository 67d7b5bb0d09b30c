package imagestore

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matjam/smoothview/internal/geom"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	return img
}

func TestEmptyStore(t *testing.T) {
	s := New()
	if !s.IsEmpty() {
		t.Error("new store is not empty")
	}
	if s.Size() != (geom.Size{}) {
		t.Errorf("empty size = %v", s.Size())
	}
	if s.RenderAt(image.Pt(10, 10)) != nil {
		t.Error("empty store rendered something")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testImage(64, 32)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	s := New()
	if err := s.Load(path); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(geom.Sz(64, 32), s.Size()); d != "" {
		t.Errorf("size (-want +got):\n%s", d)
	}
	if s.Path() != path {
		t.Errorf("path = %q", s.Path())
	}

	if err := s.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("loading a missing file succeeded")
	}
}

func TestLoadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New()
	if err := s.Load(path); err == nil {
		t.Error("decoding garbage succeeded")
	}
	if !s.IsEmpty() {
		t.Error("failed load replaced the image")
	}
}

func TestRenderAt(t *testing.T) {
	s := New()
	src := testImage(100, 50)
	s.SetImage(src, "")

	level := s.RenderAt(image.Pt(40, 20))
	if got := level.Bounds().Size(); got != image.Pt(40, 20) {
		t.Errorf("level size = %v", got)
	}
	if again := s.RenderAt(image.Pt(40, 20)); again != level {
		t.Error("level was not cached")
	}

	if got := s.RenderAt(image.Pt(200, 100)); got != image.Image(src) {
		t.Error("upscaling request should return the original")
	}

	s.SetImage(testImage(10, 10), "")
	if got := s.RenderAt(image.Pt(40, 20)).Bounds().Size(); got != image.Pt(10, 10) {
		t.Errorf("cache survived SetImage, size %v", got)
	}
}
