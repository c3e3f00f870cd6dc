package pixel

import "math"

// Contrast applies clamp(128 + m*(v-128), 0, 255) to every luma pixel.
func Contrast(l *LumaFrame, m float64) *LumaFrame {
	out := NewLumaFrame(l.Width, l.Height)
	for i, v := range l.Pix {
		out.Pix[i] = clampByte(int(math.RoundToEven(128 + m*(float64(v)-128))))
	}
	return out
}

// Brightness applies clamp(m*v, 0, 255) to every luma pixel.
func Brightness(l *LumaFrame, m float64) *LumaFrame {
	out := NewLumaFrame(l.Width, l.Height)
	for i, v := range l.Pix {
		out.Pix[i] = clampByte(int(math.RoundToEven(m * float64(v))))
	}
	return out
}

// ContrastFrame applies Contrast's formula independently to each of the R,
// G, B channels of f (alpha untouched). Used by the stress harness and
// Tier 4, which perturb the original RGBA frame before any luma conversion.
func ContrastFrame(f *Frame, m float64) *Frame {
	out := NewFrame(f.Width, f.Height)
	n := f.Width * f.Height
	for i := 0; i < n; i++ {
		p := f.Pix[i*4 : i*4+4 : i*4+4]
		q := out.Pix[i*4 : i*4+4 : i*4+4]
		q[0] = clampByte(int(math.RoundToEven(128 + m*(float64(p[0])-128))))
		q[1] = clampByte(int(math.RoundToEven(128 + m*(float64(p[1])-128))))
		q[2] = clampByte(int(math.RoundToEven(128 + m*(float64(p[2])-128))))
		q[3] = p[3]
	}
	return out
}

// BrightnessFrame applies Brightness's formula independently to each of the
// R, G, B channels of f (alpha untouched).
func BrightnessFrame(f *Frame, m float64) *Frame {
	out := NewFrame(f.Width, f.Height)
	n := f.Width * f.Height
	for i := 0; i < n; i++ {
		p := f.Pix[i*4 : i*4+4 : i*4+4]
		q := out.Pix[i*4 : i*4+4 : i*4+4]
		q[0] = clampByte(int(math.RoundToEven(m * float64(p[0]))))
		q[1] = clampByte(int(math.RoundToEven(m * float64(p[1]))))
		q[2] = clampByte(int(math.RoundToEven(m * float64(p[2]))))
		q[3] = p[3]
	}
	return out
}
