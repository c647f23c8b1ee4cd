package imageio_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/mosaicwave/wfc/imageio"
	"github.com/mosaicwave/wfc/pattern"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDecodeQuantizesDistinctColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})

	sample, pal, err := imageio.Decode(img)
	require.NoError(t, err)
	require.Equal(t, 2, sample.Width)
	require.Equal(t, 2, sample.Height)
	require.Equal(t, 3, pal.Len())
	require.Equal(t, sample.Pixels[0], sample.Pixels[3])
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	img := solidImage(3, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	sample, pal, err := imageio.Decode(img)
	require.NoError(t, err)

	out := imageio.Encode(sample.Width, sample.Height, sample.Pixels, pal)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			r, g, b, a := out.NRGBAAt(x, y).R, out.NRGBAAt(x, y).G, out.NRGBAAt(x, y).B, out.NRGBAAt(x, y).A
			require.Equal(t, uint8(10), r)
			require.Equal(t, uint8(20), g)
			require.Equal(t, uint8(30), b)
			require.Equal(t, uint8(255), a)
		}
	}
}

func TestPackUnpackRGBARoundTrip(t *testing.T) {
	raw := pattern.PackRGBA(1, 2, 3, 4)
	r, g, b, a := pattern.UnpackRGBA(raw)
	require.Equal(t, uint8(1), r)
	require.Equal(t, uint8(2), g)
	require.Equal(t, uint8(3), b)
	require.Equal(t, uint8(4), a)
}

func TestUpscaleQuadruplesDimensions(t *testing.T) {
	src := solidImage(2, 2, color.NRGBA{R: 5, G: 5, B: 5, A: 255})
	dst := imageio.Upscale(src, 8, 8)
	require.Equal(t, 8, dst.Bounds().Dx())
	require.Equal(t, 8, dst.Bounds().Dy())
	c := dst.NRGBAAt(0, 0)
	require.Equal(t, uint8(5), c.R)
}
