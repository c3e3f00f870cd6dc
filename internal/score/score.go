// Package score turns a stress harness result into the 0-100 quality score
// published in the JSON result.
package score

import "github.com/qrvalidate/qrvalidate/internal/stress"

// Weight is the point value of one stress condition, summing to 85; the
// remaining 15 points are the multi-decoder bonus, for a 100-point total.
type Weight uint8

const (
	WeightOriginal    Weight = 20
	WeightDownscale50 Weight = 15
	WeightDownscale25 Weight = 10
	WeightBlurLight   Weight = 15
	WeightBlurMedium  Weight = 10
	WeightLowContrast Weight = 15
	WeightMultiDecode Weight = 15
)

// Compute sums the weight of every stress condition that held, plus the
// multi-decoder bonus if more than one backend agreed on any variant,
// clamped to [0, 100]. Callers must not call Compute when the initial
// decode failed — the orchestrator forces the score to 0 in that case
// without running the stress harness at all.
func Compute(r stress.Result) uint8 {
	var total int
	if r.Bitmap.Original {
		total += int(WeightOriginal)
	}
	if r.Bitmap.Downscale50 {
		total += int(WeightDownscale50)
	}
	if r.Bitmap.Downscale25 {
		total += int(WeightDownscale25)
	}
	if r.Bitmap.BlurLight {
		total += int(WeightBlurLight)
	}
	if r.Bitmap.BlurMedium {
		total += int(WeightBlurMedium)
	}
	if r.Bitmap.LowContrast {
		total += int(WeightLowContrast)
	}
	if r.MaxBackends > 1 {
		total += int(WeightMultiDecode)
	}
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	return uint8(total)
}
