package qrvalidate

import "os"

// Rating buckets a score into the brackets from spec §7.
type Rating string

const (
	RatingExcellent  Rating = "Excellent"
	RatingGood       Rating = "Good"
	RatingAcceptable Rating = "Acceptable"
	RatingFair       Rating = "Fair"
	RatingPoor       Rating = "Poor"
)

func ratingFor(s uint8) Rating {
	switch {
	case s >= 80:
		return RatingExcellent
	case s >= 70:
		return RatingGood
	case s >= 60:
		return RatingAcceptable
	case s >= 40:
		return RatingFair
	default:
		return RatingPoor
	}
}

// QrSummary is the condensed report returned by Summarize.
type QrSummary struct {
	Valid           bool
	Score           uint8
	Content         string
	EccLevel        string
	Rating          Rating
	ProductionReady bool
}

// IsValid reads path and returns the decoded content if the image is
// decodable, or nil on any error (file-system, image-load, or
// decode-failure). It swallows every error, per spec §6/§7's propagation
// policy for convenience helpers.
func IsValid(path string) *string {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	res, err := DecodeOnly(buf)
	if err != nil {
		return nil
	}
	return &res.Content
}

// Score reads path and returns its validation score, or 0 on any error.
func Score(path string) uint8 {
	buf, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	res, err := Validate(buf)
	if err != nil {
		return 0
	}
	return res.Score
}

// PassesThreshold reports whether path's score is at least min. An
// unreadable or undecodable image never passes.
func PassesThreshold(path string, min uint8) bool {
	return Score(path) >= min
}

// Summarize reads path and returns a condensed, never-erroring report. Any
// failure produces the zero-value-equivalent "Poor", not-valid summary.
func Summarize(path string) QrSummary {
	buf, err := os.ReadFile(path)
	if err != nil {
		return QrSummary{Rating: RatingPoor}
	}
	res, err := Validate(buf)
	if err != nil {
		return QrSummary{Rating: RatingPoor}
	}
	return QrSummary{
		Valid:           res.Decodable,
		Score:           res.Score,
		Content:         res.Content,
		EccLevel:        eccOf(res),
		Rating:          ratingFor(res.Score),
		ProductionReady: res.Score >= 70,
	}
}

func eccOf(res *ValidationResult) string {
	if res.Metadata == nil {
		return ""
	}
	return res.Metadata.ErrorCorrection
}
