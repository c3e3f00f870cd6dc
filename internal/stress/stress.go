// Package stress applies the six fixed, named perturbations to an
// already-decoded frame and records which ones still decode, plus the
// maximum backend diversity observed, feeding the score computer.
package stress

import (
	"github.com/qrvalidate/qrvalidate/internal/decoder"
	"github.com/qrvalidate/qrvalidate/internal/pixel"
	"github.com/qrvalidate/qrvalidate/internal/workerpool"
)

// Name identifies one of the six fixed perturbations.
type Name string

const (
	Original     Name = "original"
	Downscale50  Name = "downscale_50"
	Downscale25  Name = "downscale_25"
	BlurLight    Name = "blur_light"
	BlurMedium   Name = "blur_medium"
	LowContrast  Name = "low_contrast"
)

// FastSubset is the 3-test subset ValidateFast runs, per spec §4.4.
var FastSubset = []Name{Original, Downscale50, BlurLight}

// FullSet is all six perturbations, in published order.
var FullSet = []Name{Original, Downscale50, Downscale25, BlurLight, BlurMedium, LowContrast}

type perturbation struct {
	name  Name
	apply func(*pixel.Frame) *pixel.Frame
}

var perturbations = map[Name]perturbation{
	Original:    {Original, func(f *pixel.Frame) *pixel.Frame { return f }},
	Downscale50: {Downscale50, func(f *pixel.Frame) *pixel.Frame { return pixel.ResizeScale(f, 0.5) }},
	Downscale25: {Downscale25, func(f *pixel.Frame) *pixel.Frame { return pixel.ResizeScale(f, 0.25) }},
	BlurLight:   {BlurLight, func(f *pixel.Frame) *pixel.Frame { return pixel.GaussianBlurFrame(f, 1.0) }},
	BlurMedium:  {BlurMedium, func(f *pixel.Frame) *pixel.Frame { return pixel.GaussianBlurFrame(f, 2.0) }},
	LowContrast: {LowContrast, func(f *pixel.Frame) *pixel.Frame { return pixel.ContrastFrame(f, 0.5) }},
}

// Bitmap records which of the six perturbations still decoded.
type Bitmap struct {
	Original    bool
	Downscale50 bool
	Downscale25 bool
	BlurLight   bool
	BlurMedium  bool
	LowContrast bool
}

func (b *Bitmap) set(n Name, v bool) {
	switch n {
	case Original:
		b.Original = v
	case Downscale50:
		b.Downscale50 = v
	case Downscale25:
		b.Downscale25 = v
	case BlurLight:
		b.BlurLight = v
	case BlurMedium:
		b.BlurMedium = v
	case LowContrast:
		b.LowContrast = v
	}
}

// Result is the stress harness's output: which perturbations decoded, the
// maximum number of backends that agreed on any single variant, and (a
// supplemented, debug-only accessor — not part of the published JSON
// contract) a per-backend decode count across all variants.
type Result struct {
	Bitmap          Bitmap
	MaxBackends     int
	BackendCoverage map[decoder.Backend]int
}

// Run applies either the full 6-perturbation set or, when fast is true,
// the 3-test FastSubset, to frame. Perturbations are independent and run
// concurrently on the shared worker pool; unmeasured tests (in fast mode)
// are left false in the returned Bitmap, by construction making fast
// scores never exceed full scores.
func Run(frame *pixel.Frame, fast bool) Result {
	names := FullSet
	if fast {
		names = FastSubset
	}

	type variantOutcome struct {
		name Name
		out  decoder.Outcome
	}

	tasks := make([]func() variantOutcome, len(names))
	for i, n := range names {
		n := n
		tasks[i] = func() variantOutcome {
			p := perturbations[n]
			variant := p.apply(frame)
			luma := pixel.ToLuma(variant)
			return variantOutcome{name: n, out: decoder.AttemptBoth(luma)}
		}
	}

	results := workerpool.RunAll(workerpool.Global(), tasks)

	res := Result{BackendCoverage: map[decoder.Backend]int{}}
	for _, vo := range results {
		res.Bitmap.set(vo.name, vo.out.Success)
		if !vo.out.Success {
			continue
		}
		if n := len(vo.out.Meta.Backends); n > res.MaxBackends {
			res.MaxBackends = n
		}
		for _, b := range vo.out.Meta.Backends {
			res.BackendCoverage[b]++
		}
	}
	return res
}
