package extract

import "github.com/shopspring/decimal"

// Tuning collects every scoring and validation constant in one place. The
// source material treats these as tunable; defaults below are the documented
// starting points, overridable through configuration.
type Tuning struct {
	// StrategyWeights are static per-strategy reliability constants in [0,1].
	StrategyWeights map[string]float64

	// AmbiguityThreshold marks a field ambiguous when the top two candidate
	// scores differ by less than this.
	AmbiguityThreshold float64

	// CorroborationStep is the bonus per additional independent strategy that
	// agrees on the same canonical value; CorroborationCap bounds the
	// resulting multiplier.
	CorroborationStep float64
	CorroborationCap  float64

	// ReconcileTolerance is the absolute rounding slack for arithmetic
	// reconciliation, in currency units.
	ReconcileTolerance decimal.Decimal

	// LowConfidenceFloor: fields scored below this get an info-severity issue.
	LowConfidenceFloor float64

	// Overall-confidence weights per field class.
	MandatoryWeight float64
	OptionalWeight  float64
}

// DefaultTuning mirrors the per-extractor reliabilities of the original rule
// set: anchored regexes 0.90, labeled values 0.85, layout heuristics 0.70.
func DefaultTuning() Tuning {
	return Tuning{
		StrategyWeights: map[string]float64{
			StrategyKeywordRegex:   0.90,
			StrategyLabelProximity: 0.85,
			StrategyPositional:     0.70,
			StrategyLineTable:      0.80,
		},
		AmbiguityThreshold: 0.05,
		CorroborationStep:  0.10,
		CorroborationCap:   1.25,
		ReconcileTolerance: decimal.New(1, -2), // 0.01
		LowConfidenceFloor: 0.60,
		MandatoryWeight:    2.0,
		OptionalWeight:     1.0,
	}
}

// weightFor returns the reliability constant for a strategy, with a
// conservative default for strategies not present in the table.
func (t Tuning) weightFor(strategy string) float64 {
	if w, ok := t.StrategyWeights[strategy]; ok {
		return w
	}
	return 0.50
}
