package pipeline

import (
	"github.com/qrvalidate/qrvalidate/internal/decoder"
	"github.com/qrvalidate/qrvalidate/internal/pixel"
)

// Decode runs the four-tier progressive decode pipeline against frame.
// First success at any tier returns immediately; no further strategies or
// tiers execute. If all four tiers exhaust, Decode returns a failure
// outcome — there are no retries.
//
// sequentialTier3 forces Tier 3 to run strategy-by-strategy in published
// order instead of fanning out on the worker pool, for callers that need
// full strategy-identity determinism (e.g. golden tests) rather than just
// the content-determinism the public contract guarantees.
func Decode(frame *pixel.Frame, sequentialTier3 bool) decoder.Outcome {
	if out := tier1(frame); out.Success {
		return out
	}
	if out := tier2(frame); out.Success {
		return out
	}
	if sequentialTier3 {
		if out := attemptSequential(frame, tier3Strategies); out.Success {
			return out
		}
	} else if out := tier3(frame); out.Success {
		return out
	}
	if out := tier4(frame); out.Success {
		return out
	}
	return decoder.Outcome{}
}
