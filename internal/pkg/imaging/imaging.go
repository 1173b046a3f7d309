// Package imaging normalizes uploaded pictures into fixed-size JPEG thumbnails.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register gif
	"image/jpeg"
	_ "image/png" // register png

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register webp
)

const (
	MinDimension = 50
	MaxDimension = 2000

	// ContentType is the mime type of every encoded output.
	ContentType = "image/jpeg"

	// MaxSourceSide and MaxSourcePixels bound what Resize agrees to decode.
	MaxSourceSide   = 12000
	MaxSourcePixels = 40_000_000

	defaultQuality = 85
)

var (
	ErrUnsupportedFormat = errors.New("imaging: unsupported image format")
	ErrTooLarge          = errors.New("imaging: image dimensions too large")
)

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

var presets = map[Size]int{
	SizeSmall:  150,
	SizeMedium: 300,
	SizeLarge:  600,
}

// ParseSize falls back to medium for unknown names.
func ParseSize(s string) Size {
	if _, ok := presets[Size(s)]; ok {
		return Size(s)
	}
	return SizeMedium
}

type Dimensions struct {
	Size   Size
	Width  int
	Height int
}

// Resolve returns the preset box for size; a custom width or height replaces
// the matching preset side.
func Resolve(size string, width, height *int) Dimensions {
	sz := ParseSize(size)
	d := Dimensions{Size: sz, Width: presets[sz], Height: presets[sz]}
	if width != nil {
		d.Width = clamp(*width)
	}
	if height != nil {
		d.Height = clamp(*height)
	}
	return d
}

func clamp(v int) int {
	return min(max(v, MinDimension), MaxDimension)
}

// Resize decodes data, center-crops it to the target aspect ratio, scales it
// to d and encodes the result as JPEG. Sources beyond MaxSourceSide or
// MaxSourcePixels are rejected with ErrTooLarge before any pixel is decoded.
func Resize(data []byte, d Dimensions) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("imaging: decode header: %w", err)
	}
	if cfg.Width > MaxSourceSide || cfg.Height > MaxSourceSide || cfg.Width*cfg.Height > MaxSourcePixels {
		return nil, ErrTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, d.Width, d.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, cropRect(src.Bounds(), d.Width, d.Height), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: defaultQuality}); err != nil {
		return nil, fmt.Errorf("imaging: encode: %w", err)
	}

	return buf.Bytes(), nil
}

func cropRect(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()
	if sw == 0 || sh == 0 {
		return b
	}

	// compare sw/sh with w/h without floats
	if sw*h > sh*w {
		cw := sh * w / h
		x0 := b.Min.X + (sw-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}

	ch := sw * h / w
	y0 := b.Min.Y + (sh-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}
