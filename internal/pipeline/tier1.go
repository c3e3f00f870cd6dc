package pipeline

import (
	"github.com/qrvalidate/qrvalidate/internal/decoder"
	"github.com/qrvalidate/qrvalidate/internal/pixel"
)

// tier1Strategies is the single raw-luma attempt at the frame as decoded,
// no preprocessing at all.
var tier1Strategies = []strategy{
	{name: "original", run: pixel.ToLuma},
}

func tier1(frame *pixel.Frame) decoder.Outcome {
	return attemptSequential(frame, tier1Strategies)
}
