package qrvalidate

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/qrvalidate/qrvalidate/internal/decoder"
	"github.com/qrvalidate/qrvalidate/internal/pipeline"
	"github.com/qrvalidate/qrvalidate/internal/pixel"
	"github.com/qrvalidate/qrvalidate/internal/score"
	"github.com/qrvalidate/qrvalidate/internal/stress"
)

// Option configures a single Validate/ValidateFast/DecodeOnly call.
type Option func(*options)

type options struct {
	sequentialTier3 bool
	backendCoverage *map[string]int
}

// WithSequentialTier3 forces Tier 3 of the decode pipeline to run its
// strategies one at a time, in published order, instead of fanning out on
// the worker pool. Content-level results are identical either way; this
// only matters to callers (golden tests) that need the pipeline's internal
// timing to be fully deterministic, not just its output.
func WithSequentialTier3() Option {
	return func(o *options) { o.sequentialTier3 = true }
}

// WithBackendCoverage captures, into *dst, a debug-only per-backend decode
// count across the stress harness's six perturbation variants — how many
// of the (up to six) variants each backend successfully decoded. It has no
// effect on DecodeOnly, which never runs the stress harness. Not part of
// the published JSON wire format; cmd/qrvalidate's -debug flag is the only
// built-in consumer.
func WithBackendCoverage(dst *map[string]int) Option {
	return func(o *options) { o.backendCoverage = dst }
}

func resolveOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// loadFrame decodes buf as PNG or JPEG into a pixel.Frame, enforcing
// MaxImageBytes before any codec runs.
func loadFrame(buf []byte) (*pixel.Frame, error) {
	if len(buf) > MaxImageBytes {
		return nil, newErr(KindImageTooLarge, fmt.Sprintf("%d bytes exceeds the %d byte limit", len(buf), MaxImageBytes), nil)
	}
	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, newErr(KindImageLoad, "decoding image bytes", err)
	}
	f := pixel.FromImage(img)
	if f.Width == 0 || f.Height == 0 {
		return nil, newErr(KindImageLoad, "decoded frame has zero width or height", nil)
	}
	return f, nil
}

func decodeFrame(f *pixel.Frame, o options) decoder.Outcome {
	return pipeline.Decode(f, o.sequentialTier3)
}

// DecodeOnly runs only the tiered decode pipeline: no stress testing, no
// scoring. The cheapest of the three entry points.
func DecodeOnly(buf []byte, opts ...Option) (*DecodeResult, error) {
	o := resolveOptions(opts)
	f, err := loadFrame(buf)
	if err != nil {
		return nil, err
	}
	out := decodeFrame(f, o)
	if !out.Success {
		return nil, newErr(KindDecodeFailed, "all pipeline tiers exhausted", nil)
	}
	return &DecodeResult{
		Decodable: true,
		Content:   out.Content,
		Metadata:  metadataFrom(out.Meta),
	}, nil
}

func validate(buf []byte, fast bool, opts ...Option) (*ValidationResult, error) {
	o := resolveOptions(opts)
	f, err := loadFrame(buf)
	if err != nil {
		return nil, err
	}
	out := decodeFrame(f, o)
	if !out.Success {
		return nil, newErr(KindDecodeFailed, "all pipeline tiers exhausted", nil)
	}

	stressRes := stress.Run(f, fast)
	if o.backendCoverage != nil {
		cov := make(map[string]int, len(stressRes.BackendCoverage))
		for b, n := range stressRes.BackendCoverage {
			cov[string(b)] = n
		}
		*o.backendCoverage = cov
	}
	return &ValidationResult{
		Score:         score.Compute(stressRes),
		Decodable:     true,
		Content:       out.Content,
		Metadata:      metadataFrom(out.Meta),
		StressResults: stressResultsFrom(stressRes.Bitmap),
	}, nil
}

// Validate runs the full pipeline: decode, then all six stress
// perturbations, then the weighted score.
func Validate(buf []byte, opts ...Option) (*ValidationResult, error) {
	return validate(buf, false, opts...)
}

// ValidateFast runs the decode pipeline followed by the 3-test stress
// subset (original, downscale_50, blur_light). Scores from ValidateFast
// are never higher than the equivalent Validate call on the same image,
// since the untested conditions contribute no weight.
func ValidateFast(buf []byte, opts ...Option) (*ValidationResult, error) {
	return validate(buf, true, opts...)
}

// Probe is a cheap, decode-free sniff of an image buffer's declared format
// and dimensions, for callers that want to reject an oversized or
// wrong-format image before paying for a full decode.
type Probe struct {
	Format string
	Width  int
	Height int
}

// ProbeBytes inspects buf's container header without running the full
// pixel decode.
func ProbeBytes(buf []byte) (*Probe, error) {
	if len(buf) > MaxImageBytes {
		return nil, newErr(KindImageTooLarge, fmt.Sprintf("%d bytes exceeds the %d byte limit", len(buf), MaxImageBytes), nil)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		return nil, newErr(KindImageLoad, "reading image header", err)
	}
	return &Probe{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
