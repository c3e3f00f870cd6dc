package pipeline

// PreprocessParams bundles the knobs Tier 4's brute-force search samples:
// target resize dimension (0 = no resize), contrast multiplier, brightness
// multiplier, Gaussian blur sigma, and whether to convert to luma via the
// standard BT.601 weights (true) or the plain channel average (false).
type PreprocessParams struct {
	Resize     int
	Contrast   float64
	Brightness float64
	BlurSigma  float64
	ToLuma     bool
}

// Published nominal per-tier latency budgets (spec §4.3). Not enforced as
// hard deadlines — per the spec's concurrency model, a top-level call is
// not externally cancellable and in-flight Tier 3 workers are allowed to
// run to completion even past budget — but kept here so callers building
// telemetry on top of this package have the numbers the tiers were sized
// against.
const (
	Tier1Budget = 100 // ms
	Tier2Budget = 150
	Tier3Budget = 700
	Tier4Budget = 2500
)

// tier4SampleCount is the fixed number of PreprocessParams combinations
// Tier 4 draws from the full Cartesian product, per the spec's resolution
// of the source's drifted "50/100/256 tries" ambiguity.
const tier4SampleCount = 256

var (
	tier4Resize     = []int{0, 200, 250, 300, 350, 400}
	tier4Contrast   = []float64{1.0, 1.5, 2.0, 2.5, 3.0, 4.0}
	tier4Brightness = []float64{0.8, 0.9, 1.0, 1.1, 1.2}
	tier4BlurSigma  = []float64{0.0, 0.5, 1.0, 1.5}
	tier4ToLuma     = []bool{true, false}
)

// tier4Grid builds the deterministic, ordered sample set Tier 4 attempts:
// the outermost loop is resize (ascending, smaller first), then blur sigma
// (descending), then contrast (ascending), then brightness (ascending),
// then to-luma (BT.601 before plain average) — the first three orderings are
// specified; the remaining two are this implementation's deterministic
// extension of that order, needed to make "take the first 256" well
// defined. The grid is truncated to tier4SampleCount entries.
func tier4Grid() []PreprocessParams {
	grid := make([]PreprocessParams, 0, tier4SampleCount)
	for _, resize := range tier4Resize {
		for bi := len(tier4BlurSigma) - 1; bi >= 0; bi-- {
			blur := tier4BlurSigma[bi]
			for _, contrast := range tier4Contrast {
				for _, brightness := range tier4Brightness {
					for _, toLuma := range tier4ToLuma {
						if len(grid) >= tier4SampleCount {
							return grid
						}
						grid = append(grid, PreprocessParams{
							Resize:     resize,
							Contrast:   contrast,
							Brightness: brightness,
							BlurSigma:  blur,
							ToLuma:     toLuma,
						})
					}
				}
			}
		}
	}
	return grid
}
