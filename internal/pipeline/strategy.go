package pipeline

import (
	"github.com/qrvalidate/qrvalidate/internal/decoder"
	"github.com/qrvalidate/qrvalidate/internal/pixel"
	"github.com/qrvalidate/qrvalidate/internal/workerpool"
)

// strategy models a single named preprocessing function, per the spec's
// "Strategy dispatch" design note: strategies are values in a list, not a
// subclass hierarchy, which keeps tiers data-driven and trivially
// extensible.
type strategy struct {
	name string
	run  func(f *pixel.Frame) *pixel.LumaFrame
}

// attemptSequential tries each strategy against frame in published order,
// returning on the first success. The winning strategy's name is not
// surfaced to the caller — only content, metadata, and backend are, per
// the spec's "early exit" contract.
func attemptSequential(frame *pixel.Frame, strategies []strategy) decoder.Outcome {
	for _, s := range strategies {
		luma := s.run(frame)
		if out := decoder.Attempt(luma); out.Success {
			return out
		}
	}
	return decoder.Outcome{}
}

// attemptParallel submits every strategy as an independent work item on the
// shared worker pool and returns as soon as any one succeeds. This is
// "find-any" parallelism: the published strategy ordering does not
// determine which equivalent-cost strategy wins, and in-flight workers
// keep running to completion after a hit — the pool enforces that, not
// this function.
func attemptParallel(frame *pixel.Frame, strategies []strategy) decoder.Outcome {
	tasks := make([]func() workerpool.Result[decoder.Outcome], len(strategies))
	for i, s := range strategies {
		s := s
		tasks[i] = func() workerpool.Result[decoder.Outcome] {
			luma := s.run(frame)
			out := decoder.Attempt(luma)
			return workerpool.Result[decoder.Outcome]{Value: out, Ok: out.Success}
		}
	}
	r := workerpool.FindFirst(workerpool.Global(), tasks)
	return r.Value
}
