package decoder

import "github.com/qrvalidate/qrvalidate/internal/pixel"

// backend is the minimal "attempt one frame" capability both decoder
// libraries are adapted to. Keeping it unexported and tiny is what lets the
// facade stay small, per the spec's "Backend abstraction" design note.
type backend interface {
	name() Backend
	decode(l *pixel.LumaFrame) Outcome
}

var backends = []backend{zxingBackend{}, quircBackend{}}

// Attempt runs backend A (ZXing-lineage) first; only on its failure does it
// run backend B (Quirc-lineage). The first success short-circuits the
// other backend entirely. Backend panics are recovered inside each
// backend's decode method and surfaced as a per-backend failure, never
// propagated past this call.
func Attempt(l *pixel.LumaFrame) Outcome {
	for _, b := range backends {
		if out := b.decode(l); out.Success {
			return out
		}
	}
	return failure()
}

// AttemptBoth runs every backend regardless of outcome and returns a
// Success listing every backend that succeeded, used only by the stress
// harness's multi-decoder bonus test.
func AttemptBoth(l *pixel.LumaFrame) Outcome {
	var out Outcome
	for _, b := range backends {
		r := b.decode(l)
		if !r.Success {
			continue
		}
		if !out.Success {
			out = r
			continue
		}
		out.Meta.Backends = append(out.Meta.Backends, r.Meta.Backends...)
	}
	return out
}
