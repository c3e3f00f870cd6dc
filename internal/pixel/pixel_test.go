package pixel

import "testing"

func solidFrame(w, h int, r, g, b, a byte) *Frame {
	f := NewFrame(w, h)
	for i := 0; i < w*h; i++ {
		p := f.Pix[i*4 : i*4+4 : i*4+4]
		p[0], p[1], p[2], p[3] = r, g, b, a
	}
	return f
}

func TestToLuma_White(t *testing.T) {
	f := solidFrame(2, 2, 255, 255, 255, 255)
	l := ToLuma(f)
	for _, v := range l.Pix {
		if v != 255 {
			t.Errorf("white luma = %d, want 255", v)
		}
	}
}

func TestToLuma_Black(t *testing.T) {
	f := solidFrame(2, 2, 0, 0, 0, 255)
	l := ToLuma(f)
	for _, v := range l.Pix {
		if v != 0 {
			t.Errorf("black luma = %d, want 0", v)
		}
	}
}

func TestExtractChannel_RGB(t *testing.T) {
	f := solidFrame(1, 1, 10, 20, 30, 255)
	if v := ExtractChannel(f, ChannelR).Pix[0]; v != 10 {
		t.Errorf("R = %d, want 10", v)
	}
	if v := ExtractChannel(f, ChannelG).Pix[0]; v != 20 {
		t.Errorf("G = %d, want 20", v)
	}
	if v := ExtractChannel(f, ChannelB).Pix[0]; v != 30 {
		t.Errorf("B = %d, want 30", v)
	}
}

func TestExtractChannel_ValueIsMax(t *testing.T) {
	f := solidFrame(1, 1, 200, 50, 10, 255)
	v := ExtractChannel(f, ChannelValue).Pix[0]
	if v < 195 || v > 200 {
		t.Errorf("value = %d, want ~200", v)
	}
}

func TestCustomGrayscale_Clamps(t *testing.T) {
	f := solidFrame(1, 1, 255, 255, 255, 255)
	// weights sum > 1 should clamp to 255, not overflow.
	v := CustomGrayscale(f, 1, 1, 1).Pix[0]
	if v != 255 {
		t.Errorf("clamped grayscale = %d, want 255", v)
	}
}

func TestCustomGrayscale_NegativeWeight(t *testing.T) {
	f := solidFrame(1, 1, 0, 255, 0, 255)
	// wg = -1 on pure green should clamp to 0, not wrap/underflow.
	v := CustomGrayscale(f, 0, -1, 0).Pix[0]
	if v != 0 {
		t.Errorf("negative-weight grayscale = %d, want 0", v)
	}
}

func TestLinearCombination_RedBlueMinusGreen(t *testing.T) {
	f := solidFrame(1, 1, 200, 50, 100, 255)
	l := LinearCombination(f, func(r, g, b int) int { return (r+b)/2 - g })
	want := clampByte((200+100)/2 - 50)
	if l.Pix[0] != want {
		t.Errorf("combination = %d, want %d", l.Pix[0], want)
	}
}

func TestOtsuThreshold_Bimodal(t *testing.T) {
	l := NewLumaFrame(4, 1)
	l.Pix[0], l.Pix[1] = 10, 10
	l.Pix[2], l.Pix[3] = 245, 245
	level := OtsuLevel(l)
	if level < 10 || level > 244 {
		t.Errorf("otsu level = %d, want between the two clusters", level)
	}
	bin := Threshold(l, level)
	if bin.Pix[0] != 0 || bin.Pix[1] != 0 || bin.Pix[2] != 255 || bin.Pix[3] != 255 {
		t.Errorf("binarised = %v, want [0 0 255 255]", bin.Pix)
	}
}

func TestInvert(t *testing.T) {
	l := &LumaFrame{Width: 2, Height: 1, Pix: []byte{0, 255}}
	inv := Invert(l)
	if inv.Pix[0] != 255 || inv.Pix[1] != 0 {
		t.Errorf("invert = %v, want [255 0]", inv.Pix)
	}
}

func TestContrast_Midpoint(t *testing.T) {
	l := &LumaFrame{Width: 1, Height: 1, Pix: []byte{128}}
	out := Contrast(l, 2.0)
	if out.Pix[0] != 128 {
		t.Errorf("contrast at midpoint = %d, want 128 (fixed point)", out.Pix[0])
	}
}

func TestContrast_Clamps(t *testing.T) {
	l := &LumaFrame{Width: 1, Height: 1, Pix: []byte{255}}
	out := Contrast(l, 4.0)
	if out.Pix[0] != 255 {
		t.Errorf("contrast overflow = %d, want clamped 255", out.Pix[0])
	}
}

func TestBrightness_Clamps(t *testing.T) {
	l := &LumaFrame{Width: 1, Height: 1, Pix: []byte{200}}
	out := Brightness(l, 1.2)
	if out.Pix[0] != 240 {
		t.Errorf("brightness = %d, want 240", out.Pix[0])
	}
	out2 := Brightness(l, 2.0)
	if out2.Pix[0] != 255 {
		t.Errorf("brightness overflow = %d, want clamped 255", out2.Pix[0])
	}
}

func TestGaussianBlur_PreservesFlatField(t *testing.T) {
	l := NewLumaFrame(8, 8)
	for i := range l.Pix {
		l.Pix[i] = 100
	}
	out := GaussianBlur(l, 1.0)
	for i, v := range out.Pix {
		if v != 100 {
			t.Fatalf("blurred flat field pixel %d = %d, want 100", i, v)
		}
	}
}

func TestGaussianBlur_ZeroSigmaIsIdentity(t *testing.T) {
	l := &LumaFrame{Width: 2, Height: 1, Pix: []byte{10, 200}}
	out := GaussianBlur(l, 0)
	if out.Pix[0] != 10 || out.Pix[1] != 200 {
		t.Errorf("sigma=0 blur = %v, want identity", out.Pix)
	}
}

func TestResize_DimensionsMatch(t *testing.T) {
	f := NewFrame(40, 40)
	out := Resize(f, 20, 10)
	if out.Width != 20 || out.Height != 10 {
		t.Errorf("resize dims = %dx%d, want 20x10", out.Width, out.Height)
	}
}

func TestResizeScale_Downscale50(t *testing.T) {
	f := NewFrame(100, 100)
	out := ResizeScale(f, 0.5)
	if out.Width != 50 || out.Height != 50 {
		t.Errorf("downscale_50 dims = %dx%d, want 50x50", out.Width, out.Height)
	}
}

func TestSharpen_FlatFieldUnchanged(t *testing.T) {
	l := NewLumaFrame(5, 5)
	for i := range l.Pix {
		l.Pix[i] = 77
	}
	out := Sharpen(l)
	for i, v := range out.Pix {
		if v != 77 {
			t.Fatalf("sharpened flat field pixel %d = %d, want 77", i, v)
		}
	}
}

func TestFrameImageRoundTrip(t *testing.T) {
	f := solidFrame(3, 3, 1, 2, 3, 255)
	img := f.ToImage()
	back := FromImage(img)
	if back.Width != 3 || back.Height != 3 {
		t.Fatalf("round-trip dims = %dx%d, want 3x3", back.Width, back.Height)
	}
	r, g, b, a := back.At(0, 0)
	if r != 1 || g != 2 || b != 3 || a != 255 {
		t.Errorf("round-trip pixel = %d,%d,%d,%d want 1,2,3,255", r, g, b, a)
	}
}
