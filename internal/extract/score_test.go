package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anchoredDate builds a date candidate whose anchor is long enough to
// saturate the specificity factor at 1.0, so scores reduce to
// strategyWeight × corroborationBonus.
func anchoredDate(strategy, iso string, start int) Candidate {
	anchor := strings.Repeat("x", 25)
	return Candidate{
		Field:    "invoiceDate",
		Raw:      anchor + " " + iso,
		Value:    DateValue(iso),
		Strategy: strategy,
		Span:     Span{Start: start, End: start + len(anchor) + 1 + len(iso)},
	}
}

func scoreOne(t *testing.T, tuning Tuning, cands ...Candidate) ScoredField {
	t.Helper()
	scorer := NewScorer(tuning, NewRegistry())
	fields := scorer.Score([]FieldCandidates{{
		Spec:       FieldSpec{Name: "invoiceDate", Type: TypeDate, Mandatory: true},
		Candidates: cands,
	}})
	require.Len(t, fields, 1)
	return fields[0]
}

func TestScorer_AmbiguityFlag(t *testing.T) {
	tests := []struct {
		name      string
		weights   map[string]float64
		ambiguous bool
	}{
		{
			name:      "near tie between different values is ambiguous",
			weights:   map[string]float64{"a": 0.80, "b": 0.79},
			ambiguous: true,
		},
		{
			name:      "clear margin is not ambiguous",
			weights:   map[string]float64{"a": 0.90, "b": 0.40},
			ambiguous: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tuning.StrategyWeights = tt.weights

			f := scoreOne(t, tuning,
				anchoredDate("a", "2024-03-05", 0),
				anchoredDate("b", "2024-04-06", 100),
			)
			assert.Equal(t, tt.ambiguous, f.Ambiguous)
			assert.Equal(t, "2024-03-05", f.Value.Str)
			assert.Len(t, f.Competing, 1)
		})
	}
}

func TestScorer_NearTieOnSameValueIsNotAmbiguous(t *testing.T) {
	tuning := DefaultTuning()
	tuning.StrategyWeights = map[string]float64{"a": 0.80, "b": 0.79}

	f := scoreOne(t, tuning,
		anchoredDate("a", "2024-03-05", 0),
		anchoredDate("b", "2024-03-05", 100),
	)
	assert.False(t, f.Ambiguous)
}

func TestScorer_CorroborationBonus(t *testing.T) {
	tuning := DefaultTuning()
	tuning.StrategyWeights = map[string]float64{"a": 0.80, "b": 0.80}

	solo := scoreOne(t, tuning, anchoredDate("a", "2024-03-05", 0))
	assert.InDelta(t, 0.80, solo.Confidence, 1e-9)

	agreed := scoreOne(t, tuning,
		anchoredDate("a", "2024-03-05", 0),
		anchoredDate("b", "2024-03-05", 100),
	)
	assert.InDelta(t, 0.88, agreed.Confidence, 1e-9) // 0.80 × 1.10
}

func TestScorer_CorroborationBonusIsCapped(t *testing.T) {
	tuning := DefaultTuning()
	tuning.StrategyWeights = map[string]float64{"a": 0.70, "b": 0.70, "c": 0.70, "d": 0.70}

	// four agreeing strategies would give 1.30; the cap holds it at 1.25
	f := scoreOne(t, tuning,
		anchoredDate("a", "2024-03-05", 0),
		anchoredDate("b", "2024-03-05", 100),
		anchoredDate("c", "2024-03-05", 200),
		anchoredDate("d", "2024-03-05", 300),
	)
	assert.InDelta(t, 0.70*1.25, f.Confidence, 1e-9)
}

func TestScorer_ScoreIsClampedToOne(t *testing.T) {
	tuning := DefaultTuning()
	tuning.StrategyWeights = map[string]float64{"a": 0.95, "b": 0.95, "c": 0.95}

	f := scoreOne(t, tuning,
		anchoredDate("a", "2024-03-05", 0),
		anchoredDate("b", "2024-03-05", 100),
		anchoredDate("c", "2024-03-05", 200),
	)
	assert.Equal(t, 1.0, f.Confidence)
}

func TestScorer_TieBreaksByStrategyPriorityThenPosition(t *testing.T) {
	tuning := DefaultTuning()
	tuning.StrategyWeights = map[string]float64{
		StrategyKeywordRegex:   0.80,
		StrategyLabelProximity: 0.80,
	}

	// equal scores: registration order prefers keyword-regex
	f := scoreOne(t, tuning,
		anchoredDate(StrategyLabelProximity, "2024-03-05", 0),
		anchoredDate(StrategyKeywordRegex, "2024-04-06", 100),
	)
	assert.Equal(t, StrategyKeywordRegex, f.Strategy)
	assert.Equal(t, "2024-04-06", f.Value.Str)

	// equal scores and strategy: earliest text position wins
	f = scoreOne(t, tuning,
		anchoredDate(StrategyKeywordRegex, "2024-04-06", 100),
		anchoredDate(StrategyKeywordRegex, "2024-03-05", 10),
	)
	assert.Equal(t, 10, f.Span.Start)
	assert.Equal(t, "2024-03-05", f.Value.Str)
}

func TestScorer_SkipsFieldsWithoutCandidates(t *testing.T) {
	scorer := NewScorer(DefaultTuning(), NewRegistry())
	fields := scorer.Score([]FieldCandidates{
		{Spec: FieldSpec{Name: "invoiceId", Type: TypeString}},
	})
	assert.Empty(t, fields)
}

func TestSpecificityFactor(t *testing.T) {
	bare := Candidate{Raw: "2024-03-05", Value: DateValue("2024-03-05")}
	assert.InDelta(t, 0.75, specificityFactor(bare), 1e-9)

	half := Candidate{Raw: "Issue Date 2024-03-05", Value: DateValue("2024-03-05")}
	// 11 runes of anchor out of the 20-rune saturation point
	assert.InDelta(t, 0.75+0.25*(11.0/20.0), specificityFactor(half), 1e-9)

	saturated := anchoredDate("a", "2024-03-05", 0)
	assert.InDelta(t, 1.0, specificityFactor(saturated), 1e-9)
}
