package qrvalidate

import (
	"encoding/json"

	"github.com/qrvalidate/qrvalidate/internal/decoder"
	"github.com/qrvalidate/qrvalidate/internal/stress"
)

// Metadata describes a successfully decoded QR symbol.
type Metadata struct {
	Version         int
	ErrorCorrection string
	Modules         int
	DecodersSuccess []string
}

func metadataFrom(m decoder.Metadata) *Metadata {
	names := make([]string, len(m.Backends))
	for i, b := range m.Backends {
		names[i] = string(b)
	}
	return &Metadata{
		Version:         m.Version,
		ErrorCorrection: m.Ecc.String(),
		Modules:         m.Modules,
		DecodersSuccess: names,
	}
}

// StressResults records which of the six fixed perturbations still decoded.
// A field is always false, never omitted, when the corresponding test was
// not run (e.g. ValidateFast's 3-test subset).
type StressResults struct {
	Original    bool
	Downscale50 bool
	Downscale25 bool
	BlurLight   bool
	BlurMedium  bool
	LowContrast bool
}

func stressResultsFrom(b stress.Bitmap) StressResults {
	return StressResults{
		Original:    b.Original,
		Downscale50: b.Downscale50,
		Downscale25: b.Downscale25,
		BlurLight:   b.BlurLight,
		BlurMedium:  b.BlurMedium,
		LowContrast: b.LowContrast,
	}
}

// ValidationResult is the output of Validate and ValidateFast.
type ValidationResult struct {
	Score         uint8
	Decodable     bool
	Content       string
	Metadata      *Metadata
	StressResults StressResults
}

// DecodeResult is the output of DecodeOnly: a single decode attempt with no
// stress testing or scoring.
type DecodeResult struct {
	Decodable bool
	Content   string
	Metadata  *Metadata
}

type jsonMetadata struct {
	Version         int      `json:"version"`
	ErrorCorrection string   `json:"error_correction"`
	Modules         int      `json:"modules"`
	DecodersSuccess []string `json:"decoders_success"`
}

type jsonStressResults struct {
	Original    bool `json:"original"`
	Downscale50 bool `json:"downscale_50"`
	Downscale25 bool `json:"downscale_25"`
	BlurLight   bool `json:"blur_light"`
	BlurMedium  bool `json:"blur_medium"`
	LowContrast bool `json:"low_contrast"`
}

type jsonValidationResult struct {
	Score         uint8              `json:"score"`
	Decodable     bool               `json:"decodable"`
	Content       *string            `json:"content"`
	Metadata      *jsonMetadata      `json:"metadata"`
	StressResults *jsonStressResults `json:"stress_results"`
}

// MarshalJSON produces the published wire format: snake_case field names, a
// null content/metadata when the symbol did not decode, and stress_results
// always present (per spec §6) even when every field in it is false.
func (r ValidationResult) MarshalJSON() ([]byte, error) {
	out := jsonValidationResult{
		Score:     r.Score,
		Decodable: r.Decodable,
		StressResults: &jsonStressResults{
			Original:    r.StressResults.Original,
			Downscale50: r.StressResults.Downscale50,
			Downscale25: r.StressResults.Downscale25,
			BlurLight:   r.StressResults.BlurLight,
			BlurMedium:  r.StressResults.BlurMedium,
			LowContrast: r.StressResults.LowContrast,
		},
	}
	if r.Decodable {
		content := r.Content
		out.Content = &content
	}
	if r.Metadata != nil {
		out.Metadata = &jsonMetadata{
			Version:         r.Metadata.Version,
			ErrorCorrection: r.Metadata.ErrorCorrection,
			Modules:         r.Metadata.Modules,
			DecodersSuccess: r.Metadata.DecodersSuccess,
		}
	}
	return json.Marshal(out)
}
