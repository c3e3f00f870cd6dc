package pipeline

import (
	"math"

	"github.com/qrvalidate/qrvalidate/internal/decoder"
	"github.com/qrvalidate/qrvalidate/internal/pixel"
)

// tier4 runs the deterministic 256-sample brute-force grid in order,
// stopping at the first success. Sequential, not parallel, so the
// published deterministic ordering is honoured exactly (see spec §5).
func tier4(frame *pixel.Frame) decoder.Outcome {
	for _, params := range tier4Grid() {
		luma := buildLuma(frame, params)
		if out := decoder.Attempt(luma); out.Success {
			return out
		}
	}
	return decoder.Outcome{}
}

// buildLuma applies a single pass of resize, contrast, brightness, and blur
// to frame (in that order — Tier 4 composes parameter combinations, never
// recursive strategy compositions, per the spec's flatness design note),
// then converts to luma using either BT.601 weights or a plain channel
// average depending on params.ToLuma.
func buildLuma(frame *pixel.Frame, params PreprocessParams) *pixel.LumaFrame {
	f := frame
	if params.Resize > 0 && f.Width > 0 {
		w := params.Resize
		h := int(math.Round(float64(w) * float64(f.Height) / float64(f.Width)))
		if h < 1 {
			h = 1
		}
		f = pixel.Resize(f, w, h)
	}
	f = pixel.ContrastFrame(f, params.Contrast)
	f = pixel.BrightnessFrame(f, params.Brightness)
	f = pixel.GaussianBlurFrame(f, params.BlurSigma)
	if params.ToLuma {
		return pixel.ToLuma(f)
	}
	return pixel.ToLumaAverage(f)
}
