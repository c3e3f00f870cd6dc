package pixel

// Sharpen applies the 3x3 kernel
//
//	[ 0 -1  0]
//	[-1  5 -1]
//	[ 0 -1  0]
//
// to l, clamping results to [0,255]. Edge pixels replicate the border.
func Sharpen(l *LumaFrame) *LumaFrame {
	w, h := l.Width, l.Height
	out := NewLumaFrame(w, h)
	at := func(x, y int) int {
		return int(l.Pix[clampCoord(y, h)*w+clampCoord(x, w)])
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := at(x, y)
			up := at(x, y-1)
			down := at(x, y+1)
			left := at(x-1, y)
			right := at(x+1, y)
			v := 5*center - up - down - left - right
			out.Pix[y*w+x] = clampByte(v)
		}
	}
	return out
}
