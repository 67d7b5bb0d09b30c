// Package imagestore holds the decoded image shown in the viewport and
// hands out scaled copies of it for drawing.
package imagestore

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/charmbracelet/log"
	"github.com/matjam/smoothview/internal/geom"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Store keeps the current image and one cached level of it. Like the
// viewport controller it is owned by a single goroutine.
type Store struct {
	path string
	img  image.Image

	level     *image.RGBA // last scaled copy
	levelSize image.Point
}

func New() *Store {
	return &Store{}
}

// Load reads and decodes the image at path, replacing the current one.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image file: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	log.Infof("loaded %v (%s, %vx%v)", path, format, img.Bounds().Dx(), img.Bounds().Dy())

	s.SetImage(img, path)
	return nil
}

// SetImage replaces the current image. path is informational and may be
// empty.
func (s *Store) SetImage(img image.Image, path string) {
	s.img = img
	s.path = path
	s.level = nil
	s.levelSize = image.Point{}
}

func (s *Store) Clear() {
	s.SetImage(nil, "")
}

func (s *Store) IsEmpty() bool {
	return s.img == nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Image() image.Image {
	return s.img
}

// Size returns the native image size.
func (s *Store) Size() geom.Size {
	if s.img == nil {
		return geom.Size{}
	}
	b := s.img.Bounds()
	return geom.Sz(float64(b.Dx()), float64(b.Dy()))
}

// Rect returns the origin anchored native image bounds.
func (s *Store) Rect() geom.Rect {
	return s.Size().Rect()
}

// RenderAt returns the image scaled to target if target is smaller than
// the native size on both axes, and the original image otherwise. The
// last scaled level is cached.
func (s *Store) RenderAt(target image.Point) image.Image {
	if s.img == nil {
		return nil
	}

	b := s.img.Bounds()
	if target.X <= 0 || target.Y <= 0 || target.X >= b.Dx() || target.Y >= b.Dy() {
		return s.img
	}

	if s.level != nil && s.levelSize == target {
		return s.level
	}

	dst := image.NewRGBA(image.Rect(0, 0, target.X, target.Y))
	draw.CatmullRom.Scale(dst, dst.Bounds(), s.img, b, draw.Src, nil)

	log.Debug("scaled image level", "from", b.Size(), "to", target)
	s.level = dst
	s.levelSize = target
	return dst
}
