// Package pixel implements the pure, deterministic pixel-math primitives
// the decode pipeline and stress harness build their preprocessing
// strategies from: luma conversion, channel extraction, thresholding,
// contrast/brightness, blur, resize, and sharpening.
//
// Every function here is a pure Frame/LumaFrame → Frame/LumaFrame
// transform, matching the teacher package's internal/dsp discipline of
// full-buffer-plus-base-offset byte math. Most functions allocate only
// their output buffer; Resize goes through intermediate image.RGBA values,
// and the Gaussian blur uses a float scratch buffer plus byte buffers taken
// from internal/pool.
package pixel

import (
	"image"
	"math"
)

// Frame is an in-memory RGBA image, 8 bits per channel, row-major,
// 4 bytes per pixel (R, G, B, A).
type Frame struct {
	Width, Height int
	Pix           []byte
}

// LumaFrame is a single-channel 8-bit luminance buffer, row-major,
// 1 byte per pixel.
type LumaFrame struct {
	Width, Height int
	Pix           []byte
}

// NewFrame allocates a zeroed Frame of the given dimensions.
func NewFrame(w, h int) *Frame {
	return &Frame{Width: w, Height: h, Pix: make([]byte, w*h*4)}
}

// NewLumaFrame allocates a zeroed LumaFrame of the given dimensions.
func NewLumaFrame(w, h int) *LumaFrame {
	return &LumaFrame{Width: w, Height: h, Pix: make([]byte, w*h)}
}

// At returns the RGBA quad at (x, y).
func (f *Frame) At(x, y int) (r, g, b, a byte) {
	i := (y*f.Width + x) * 4
	p := f.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

// Set writes the RGBA quad at (x, y).
func (f *Frame) Set(x, y int, r, g, b, a byte) {
	i := (y*f.Width + x) * 4
	p := f.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = r, g, b, a
}

// FromImage converts a standard library image.Image into a Frame, copying
// every pixel through image.RGBAAt-equivalent sampling. The image codec
// itself (PNG/JPEG bytes → image.Image) is out of scope for this package.
func FromImage(img image.Image) *Frame {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	f := NewFrame(w, h)
	// Fast paths for *image.RGBA and *image.NRGBA avoid the per-pixel
	// interface dispatch of img.At; every other type (e.g. the Gray and
	// YCbCr images the PNG/JPEG decoders often return) takes the generic
	// path below.
	switch src := img.(type) {
	case *image.RGBA:
		for y := 0; y < h; y++ {
			srow := src.Pix[(y)*src.Stride : (y)*src.Stride+w*4]
			drow := f.Pix[y*w*4 : y*w*4+w*4]
			copy(drow, srow)
		}
		return f
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := y*src.Stride + x*4
				r, g, bl, a := src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3]
				f.Set(x, y, r, g, bl, a)
			}
		}
		return f
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			f.Set(x, y, byte(r>>8), byte(g>>8), byte(bl>>8), byte(a>>8))
		}
	}
	return f
}

// ToImage converts a Frame to a standard library image.RGBA, copying the
// stored RGBA bytes unchanged (no premultiplication is applied).
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	copy(img.Pix, f.Pix)
	return img
}

// ToImage converts a LumaFrame to a standard library image.Gray.
func (l *LumaFrame) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, l.Width, l.Height))
	copy(img.Pix, l.Pix)
	return img
}

// clampByte clamps v to [0, 255].
func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// roundHalfToEven rounds a fixed-point value (numerator/denominator) to the
// nearest integer, breaking exact .5 ties to the nearest even integer, as
// required for the intermediate-sum divisions in the pixel primitives.
func roundHalfToEven(num, den float64) int {
	return int(math.RoundToEven(num / den))
}
