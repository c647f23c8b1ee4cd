// Package imageio adapts between image.Image and the core's palette-index
// pixel grid (pattern.Sample). Image decoding/encoding is explicitly out
// of the core's scope (spec.md §1, §6 "Persistent formats: none mandated
// by the core"); this package is the enclosing program's adapter, the way
// Fepozopo/timp's pkg/stdimg sits beside (not inside) its filter engine.
package imageio

import (
	"image"
	"image/color"

	"github.com/mosaicwave/wfc/pattern"
	"golang.org/x/image/draw"
)

// Decode converts any image.Image into a quantized pattern.Sample plus the
// pattern.Palette recording its raw colors, in row-major order starting
// at the image's bounds minimum (spec.md §3 "Color palette").
func Decode(img image.Image) (pattern.Sample, *pattern.Palette, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	raw := make([]uint32, w*h)

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			raw[i] = pattern.PackRGBA(uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(a>>8))
			i++
		}
	}

	return pattern.Quantize(w, h, raw)
}

// Encode renders a decoded pixel grid (color indices, row-major,
// width*height long) back into an *image.NRGBA using pal to resolve each
// index to its raw color (spec.md §4.F "Decoding").
func Encode(width, height int, pixels []int, pal *pattern.Palette) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	idx := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := pattern.UnpackRGBA(pal.Color(pixels[idx]))
			out.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
			idx++
		}
	}
	return out
}

// Upscale nearest-neighbor scales src to width x height, used to render
// legible preview frames for progress snapshots (spec.md §6 "On
// progress"), the same adaptive-resize role Fepozopo/timp's
// pkg/stdimg.AdaptiveResize plays for its filters, here fixed to
// nearest-neighbor since snapshot pixels are already discrete palette
// colors that must not blur.
func Upscale(src *image.NRGBA, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
