// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package icons generates the Android launcher icons of the app.

For each mipmap bucket two PNG files are written into the resource directory:

	mipmap-<density>/ic_launcher.png        square icon
	mipmap-<density>/ic_launcher_round.png  same icon, masked by a circle

Both are produced from a single source image (JPEG, PNG, GIF, BMP, TIFF or
WebP) resized with a Lanczos filter to the bucket's size. The aspect ratio of
the source is not preserved, so the source should be square.
*/
package icons

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"go.astrophena.name/base/logger"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrNoSource is returned when no source image was provided.
var ErrNoSource = errors.New("icons: no source image")

// Output file names inside of each bucket directory.
const (
	SquareName = "ic_launcher.png"
	RoundName  = "ic_launcher_round.png"
)

// Bucket is a mipmap resolution bucket.
type Bucket struct {
	// Name is the name of the bucket directory, like "mipmap-mdpi".
	Name string
	// Size is the width and height of icons in this bucket, in pixels.
	Size int
}

// Buckets are the launcher icon sizes for each screen density.
var Buckets = []Bucket{
	{"mipmap-mdpi", 48},
	{"mipmap-hdpi", 72},
	{"mipmap-xhdpi", 96},
	{"mipmap-xxhdpi", 144},
	{"mipmap-xxxhdpi", 192},
}

// Config represents an icon generation configuration.
type Config struct {
	// Source is the path to the source image.
	Source string
	// ResDir is the resource directory where bucket directories live. If
	// empty, uses app/src/main/res.
	ResDir string
	// Buckets are the buckets to generate icons for. If empty, uses Buckets.
	Buckets []Bucket
}

func (c *Config) setDefaults() {
	if c.ResDir == "" {
		c.ResDir = filepath.Join("app", "src", "main", "res")
	}
	if len(c.Buckets) == 0 {
		c.Buckets = Buckets
	}
}

// Load opens and decodes an image, applying the EXIF orientation if present.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}

// Square resizes src to size×size.
func Square(src image.Image, size int) *image.NRGBA {
	return imaging.Resize(src, size, size, imaging.Lanczos)
}

// Round resizes src to size×size and makes everything outside of the
// inscribed circle transparent.
func Round(src image.Image, size int) *image.NRGBA {
	sq := Square(src, size)
	dst := image.NewNRGBA(sq.Bounds())
	draw.DrawMask(dst, dst.Bounds(), sq, image.Point{}, &circle{size: size}, image.Point{}, draw.Src)
	return dst
}

// circle is an alpha mask with an opaque disc inscribed in a size×size square.
// A pixel is inside if its center is.
type circle struct {
	size int
}

func (c *circle) ColorModel() color.Model { return color.AlphaModel }

func (c *circle) Bounds() image.Rectangle { return image.Rect(0, 0, c.size, c.size) }

func (c *circle) At(x, y int) color.Color {
	r := float64(c.size) / 2
	dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
	if dx*dx+dy*dy <= r*r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

// Generate writes square and round icons for every bucket of c from the source
// image. A failure in one bucket doesn't prevent generating the others; all
// failures are returned together.
func Generate(ctx context.Context, c *Config) error {
	c.setDefaults()
	if c.Source == "" {
		return ErrNoSource
	}

	src, err := Load(c.Source)
	if err != nil {
		return fmt.Errorf("loading source image: %w", err)
	}

	var errs []error
	for _, b := range c.Buckets {
		if err := generateBucket(ctx, src, c.ResDir, b); err != nil {
			logger.Error(ctx, "failed to generate icons", slog.String("bucket", b.Name), slog.Any("err", err))
			errs = append(errs, fmt.Errorf("%s: %w", b.Name, err))
		}
	}
	logger.Info(ctx, "icon update complete")
	return errors.Join(errs...)
}

func generateBucket(ctx context.Context, src image.Image, resDir string, b Bucket) error {
	if b.Size <= 0 {
		return fmt.Errorf("invalid size %d", b.Size)
	}

	dir := filepath.Join(resDir, b.Name)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		logger.Info(ctx, "directory not found, creating", slog.String("dir", dir))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	for _, icon := range []struct {
		name string
		img  *image.NRGBA
	}{
		{SquareName, Square(src, b.Size)},
		{RoundName, Round(src, b.Size)},
	} {
		path := filepath.Join(dir, icon.name)
		if err := imaging.Save(icon.img, path); err != nil {
			return err
		}
		logger.Info(ctx, "saved icon", slog.String("path", path), slog.Int("size", b.Size))
	}
	return nil
}
