package pipeline

import (
	"github.com/qrvalidate/qrvalidate/internal/decoder"
	"github.com/qrvalidate/qrvalidate/internal/pixel"
)

// tier3Strategies is the "Parallel Pool": channel extractions, HSV
// components, custom grayscale weight sets, a linear combination, and an
// inverted-green variant. All are submitted as independent work items; the
// tier completes as soon as any one succeeds.
var tier3Strategies = []strategy{
	{name: "channel_r", run: func(f *pixel.Frame) *pixel.LumaFrame { return pixel.ExtractChannel(f, pixel.ChannelR) }},
	{name: "channel_g", run: func(f *pixel.Frame) *pixel.LumaFrame { return pixel.ExtractChannel(f, pixel.ChannelG) }},
	{name: "channel_b", run: func(f *pixel.Frame) *pixel.LumaFrame { return pixel.ExtractChannel(f, pixel.ChannelB) }},
	{name: "channel_saturation", run: func(f *pixel.Frame) *pixel.LumaFrame {
		return pixel.ExtractChannel(f, pixel.ChannelSaturation)
	}},
	{name: "hsv_hue", run: func(f *pixel.Frame) *pixel.LumaFrame { return pixel.ExtractChannel(f, pixel.ChannelHue) }},
	{name: "hsv_value", run: func(f *pixel.Frame) *pixel.LumaFrame { return pixel.ExtractChannel(f, pixel.ChannelValue) }},
	{name: "grayscale_even", run: func(f *pixel.Frame) *pixel.LumaFrame { return pixel.CustomGrayscale(f, 0.33, 0.33, 0.34) }},
	{name: "grayscale_rb", run: func(f *pixel.Frame) *pixel.LumaFrame { return pixel.CustomGrayscale(f, 0.5, 0.0, 0.5) }},
	{name: "grayscale_b_only", run: func(f *pixel.Frame) *pixel.LumaFrame { return pixel.CustomGrayscale(f, 0.0, 0.0, 1.0) }},
	{name: "grayscale_b_heavy", run: func(f *pixel.Frame) *pixel.LumaFrame { return pixel.CustomGrayscale(f, 0.1, 0.1, 0.8) }},
	{name: "combo_rb_minus_g", run: func(f *pixel.Frame) *pixel.LumaFrame {
		return pixel.LinearCombination(f, func(r, g, b int) int { return (r+b)/2 - g })
	}},
	{name: "inverted_green", run: func(f *pixel.Frame) *pixel.LumaFrame {
		return pixel.Invert(pixel.ExtractChannel(f, pixel.ChannelG))
	}},
}

func tier3(frame *pixel.Frame) decoder.Outcome {
	return attemptParallel(frame, tier3Strategies)
}
