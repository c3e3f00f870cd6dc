package pipeline

import (
	"github.com/qrvalidate/qrvalidate/internal/decoder"
	"github.com/qrvalidate/qrvalidate/internal/pixel"
)

// tier2Strategies is the "Quick Trio": Otsu-thresholded luma, inverted
// luma, contrast(2.0) on luma, tried strictly in this order. Each is cheap
// enough that launching goroutines for them would cost more than running
// them sequentially, per the spec's rationale for Tier 2 being sequential.
var tier2Strategies = []strategy{
	{name: "otsu", run: func(f *pixel.Frame) *pixel.LumaFrame {
		return pixel.OtsuThreshold(pixel.ToLuma(f))
	}},
	{name: "inverted", run: func(f *pixel.Frame) *pixel.LumaFrame {
		return pixel.Invert(pixel.ToLuma(f))
	}},
	{name: "contrast_2x", run: func(f *pixel.Frame) *pixel.LumaFrame {
		return pixel.Contrast(pixel.ToLuma(f), 2.0)
	}},
}

func tier2(frame *pixel.Frame) decoder.Outcome {
	return attemptSequential(frame, tier2Strategies)
}
