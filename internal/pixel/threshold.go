package pixel

// OtsuThreshold computes the discriminant-maximising threshold over the
// 256-bin histogram of l and returns a binary (0/255) LumaFrame. Ties (more
// than one threshold achieving the maximal inter-class variance) are broken
// in favour of the lowest threshold.
func OtsuThreshold(l *LumaFrame) *LumaFrame {
	t := OtsuLevel(l)
	return Threshold(l, t)
}

// OtsuLevel computes the Otsu discriminant-maximising threshold level
// (0-255) for l without applying it, so callers needing just the level
// (e.g. tests asserting determinism) don't pay for a second pass.
func OtsuLevel(l *LumaFrame) int {
	var hist [256]int
	for _, v := range l.Pix {
		hist[v]++
	}
	total := len(l.Pix)
	if total == 0 {
		return 128
	}

	var sumAll float64
	for i, c := range hist {
		sumAll += float64(i * c)
	}

	var sumB, wB float64
	wF := float64(total)
	best := 0
	bestVar := -1.0
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF = float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t * hist[t])
		mB := sumB / wB
		mF := (sumAll - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > bestVar {
			bestVar = between
			best = t
		}
	}
	return best
}

// Threshold binarises l at the given level: pixels > level become 255,
// others become 0.
func Threshold(l *LumaFrame, level int) *LumaFrame {
	out := NewLumaFrame(l.Width, l.Height)
	for i, v := range l.Pix {
		if int(v) > level {
			out.Pix[i] = 255
		}
	}
	return out
}

// Invert returns 255-v for every luma pixel.
func Invert(l *LumaFrame) *LumaFrame {
	out := NewLumaFrame(l.Width, l.Height)
	for i, v := range l.Pix {
		out.Pix[i] = 255 - v
	}
	return out
}

// InvertFrame inverts every RGB channel of f (alpha untouched), a
// per-channel invert applied before channel extraction or luma conversion.
// The Tier 3 "inverted green" strategy does not use it; it inverts the
// extracted green LumaFrame with Invert instead.
func InvertFrame(f *Frame) *Frame {
	out := NewFrame(f.Width, f.Height)
	n := f.Width * f.Height
	for i := 0; i < n; i++ {
		p := f.Pix[i*4 : i*4+4 : i*4+4]
		q := out.Pix[i*4 : i*4+4 : i*4+4]
		q[0] = 255 - p[0]
		q[1] = 255 - p[1]
		q[2] = 255 - p[2]
		q[3] = p[3]
	}
	return out
}
