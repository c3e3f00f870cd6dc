package qrvalidate

import "testing"

func TestIsValid_MissingFile_Nil(t *testing.T) {
	if got := IsValid("/nonexistent/path/does-not-exist.png"); got != nil {
		t.Errorf("IsValid(missing) = %v, want nil", got)
	}
}

func TestScore_MissingFile_Zero(t *testing.T) {
	if got := Score("/nonexistent/path/does-not-exist.png"); got != 0 {
		t.Errorf("Score(missing) = %d, want 0", got)
	}
}

func TestPassesThreshold_MissingFile_False(t *testing.T) {
	if PassesThreshold("/nonexistent/path/does-not-exist.png", 1) {
		t.Error("PassesThreshold(missing) = true, want false")
	}
}

func TestSummarize_MissingFile_Poor(t *testing.T) {
	s := Summarize("/nonexistent/path/does-not-exist.png")
	if s.Valid || s.Score != 0 || s.Rating != RatingPoor || s.ProductionReady {
		t.Errorf("Summarize(missing) = %+v, want zero-value Poor summary", s)
	}
}

func TestRatingFor_Brackets(t *testing.T) {
	cases := []struct {
		score uint8
		want  Rating
	}{
		{100, RatingExcellent},
		{80, RatingExcellent},
		{79, RatingGood},
		{70, RatingGood},
		{69, RatingAcceptable},
		{60, RatingAcceptable},
		{59, RatingFair},
		{40, RatingFair},
		{39, RatingPoor},
		{0, RatingPoor},
	}
	for _, c := range cases {
		if got := ratingFor(c.score); got != c.want {
			t.Errorf("ratingFor(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

