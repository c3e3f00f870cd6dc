package pixel

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// lanczos3 is a Lanczos-3 resampling kernel expressed the same way
// golang.org/x/image/draw expresses its own built-in kernels (CatmullRom,
// ApproxBiLinear): a support radius plus a continuous weight function.
// draw.Kernel.Scale drives the resample; we only need to supply the math.
var lanczos3 = draw.Kernel{
	Support: 3,
	At:      lanczosWeight,
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

func lanczosWeight(x float64) float64 {
	if x < 0 {
		x = -x
	}
	if x >= 3 {
		return 0
	}
	return sinc(x) * sinc(x/3)
}

// Resize scales f to the given dimensions using Lanczos-3 resampling.
func Resize(f *Frame, w, h int) *Frame {
	if w <= 0 || h <= 0 {
		return NewFrame(0, 0)
	}
	src := f.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	lanczos3.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromImage(dst)
}

// ResizeScale scales f by a single factor applied to both dimensions,
// rounding to the nearest pixel, as used by the downscale_50/downscale_25
// stress perturbations.
func ResizeScale(f *Frame, factor float64) *Frame {
	w := int(math.Round(float64(f.Width) * factor))
	h := int(math.Round(float64(f.Height) * factor))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Resize(f, w, h)
}
