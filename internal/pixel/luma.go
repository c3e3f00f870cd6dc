package pixel

import "math"

// ToLuma converts a Frame to luminance using the standard ITU-R BT.601
// weights (0.299 R + 0.587 G + 0.114 B). Output dimensions equal input.
func ToLuma(f *Frame) *LumaFrame {
	l := NewLumaFrame(f.Width, f.Height)
	n := f.Width * f.Height
	for i := 0; i < n; i++ {
		p := f.Pix[i*4 : i*4+4 : i*4+4]
		// 16-bit fixed point weights (sum to 65536) to avoid float rounding
		// drift across large images while still avoiding overflow: max sum
		// is 255*65536 which fits comfortably in a uint32.
		sum := uint32(p[0])*19595 + uint32(p[1])*38470 + uint32(p[2])*7471
		l.Pix[i] = byte((sum + 32768) >> 16)
	}
	return l
}

// ToLumaAverage converts a Frame to luminance using the plain channel
// average (R+G+B)/3, the "convert_to_luma=false" alternative the Tier 4
// brute-force grid samples alongside the BT.601 conversion.
func ToLumaAverage(f *Frame) *LumaFrame {
	l := NewLumaFrame(f.Width, f.Height)
	n := f.Width * f.Height
	for i := 0; i < n; i++ {
		p := f.Pix[i*4 : i*4+4 : i*4+4]
		sum := int(p[0]) + int(p[1]) + int(p[2])
		l.Pix[i] = byte(roundHalfToEven(float64(sum), 3))
	}
	return l
}

// Channel identifies which per-pixel component ExtractChannel reads.
type Channel int

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelSaturation
	ChannelHue
	ChannelValue
)

// ExtractChannel produces a LumaFrame from a single channel of f. For R/G/B
// the output is the raw channel value. For Saturation and Value, the HSV
// decomposition of each pixel is computed and the requested component is
// scaled to 0-255. For Hue, the 0-360 degree hue angle is quantised to
// 0-255.
func ExtractChannel(f *Frame, c Channel) *LumaFrame {
	l := NewLumaFrame(f.Width, f.Height)
	n := f.Width * f.Height
	for i := 0; i < n; i++ {
		p := f.Pix[i*4 : i*4+4 : i*4+4]
		switch c {
		case ChannelR:
			l.Pix[i] = p[0]
		case ChannelG:
			l.Pix[i] = p[1]
		case ChannelB:
			l.Pix[i] = p[2]
		default:
			h, s, v := rgbToHSV(p[0], p[1], p[2])
			switch c {
			case ChannelSaturation:
				l.Pix[i] = clampByte(int(math.Round(s * 255)))
			case ChannelValue:
				l.Pix[i] = clampByte(int(math.Round(v * 255)))
			case ChannelHue:
				l.Pix[i] = clampByte(int(math.Round(h / 360 * 255)))
			}
		}
	}
	return l
}

// rgbToHSV converts an 8-bit RGB triple to HSV with h in [0,360) and s, v in
// [0,1].
func rgbToHSV(r, g, b byte) (h, s, v float64) {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	v = max
	if max == 0 {
		s = 0
	} else {
		s = delta / max
	}
	if delta == 0 {
		h = 0
		return
	}
	switch max {
	case rf:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case gf:
		h = 60 * ((bf-rf)/delta + 2)
	case bf:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return
}

// CustomGrayscale computes wr*R + wg*G + wb*B per pixel, clamped to
// [0,255]. Weights may be arbitrary reals (including negative, as used by
// the (R+B)/2 - G Tier 3 strategy via LinearCombination).
func CustomGrayscale(f *Frame, wr, wg, wb float64) *LumaFrame {
	l := NewLumaFrame(f.Width, f.Height)
	n := f.Width * f.Height
	for i := 0; i < n; i++ {
		p := f.Pix[i*4 : i*4+4 : i*4+4]
		sum := wr*float64(p[0]) + wg*float64(p[1]) + wb*float64(p[2])
		l.Pix[i] = clampByte(int(math.RoundToEven(sum)))
	}
	return l
}

// LinearCombination applies an arbitrary per-pixel function of the three
// RGB channels, clamped to [0,255]. Used for strategies that are not a
// simple weighted sum, e.g. (R+B)/2 - G.
func LinearCombination(f *Frame, fn func(r, g, b int) int) *LumaFrame {
	l := NewLumaFrame(f.Width, f.Height)
	n := f.Width * f.Height
	for i := 0; i < n; i++ {
		p := f.Pix[i*4 : i*4+4 : i*4+4]
		l.Pix[i] = clampByte(fn(int(p[0]), int(p[1]), int(p[2])))
	}
	return l
}
