package extract

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// ScoredField is the pipeline's decision for one field. Competing candidates
// are retained for auditability even though only one value is chosen.
type ScoredField struct {
	Name       string      `json:"name"`
	Value      Value       `json:"value"`
	Confidence float64     `json:"confidence"`
	Ambiguous  bool        `json:"ambiguous"`
	Strategy   string      `json:"strategy"`
	Raw        string      `json:"raw,omitempty"`
	Span       Span        `json:"span"`
	Competing  []Candidate `json:"competingCandidates,omitempty"`

	spec FieldSpec
}

// Spec returns the field spec this decision was made under.
func (f ScoredField) Spec() FieldSpec { return f.spec }

// Scorer ranks candidates per field and selects the winner. Scoring is
// score = strategyWeight × specificityFactor × corroborationBonus, clamped
// to [0,1]; ties break by strategy priority, then earliest text position.
type Scorer struct {
	tuning   Tuning
	registry *Registry
}

func NewScorer(tuning Tuning, registry *Registry) *Scorer {
	return &Scorer{tuning: tuning, registry: registry}
}

// Score selects the best candidate for every field that attracted any.
// Fields with zero candidates are simply absent from the output; the
// validator's presence rule picks those up.
func (s *Scorer) Score(fields []FieldCandidates) []ScoredField {
	out := make([]ScoredField, 0, len(fields))
	for _, fc := range fields {
		if len(fc.Candidates) == 0 {
			continue
		}
		out = append(out, s.scoreField(fc))
	}
	return out
}

type rankedCandidate struct {
	Candidate
	score float64
}

func (s *Scorer) scoreField(fc FieldCandidates) ScoredField {
	// corroboration: how many distinct strategies proposed each canonical value
	agreeing := make(map[string]map[string]struct{})
	for _, c := range fc.Candidates {
		key := c.Value.Canonical()
		if agreeing[key] == nil {
			agreeing[key] = make(map[string]struct{})
		}
		agreeing[key][c.Strategy] = struct{}{}
	}

	ranked := make([]rankedCandidate, 0, len(fc.Candidates))
	for _, c := range fc.Candidates {
		n := len(agreeing[c.Value.Canonical()])
		bonus := 1.0 + s.tuning.CorroborationStep*float64(n-1)
		if bonus > s.tuning.CorroborationCap {
			bonus = s.tuning.CorroborationCap
		}
		score := s.tuning.weightFor(c.Strategy) * specificityFactor(c) * bonus
		ranked = append(ranked, rankedCandidate{Candidate: c, score: clamp01(score)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.score != b.score {
			return a.score > b.score
		}
		pa, pb := s.registry.Priority(a.Strategy), s.registry.Priority(b.Strategy)
		if pa != pb {
			return pa < pb
		}
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		return a.Raw < b.Raw
	})

	top := ranked[0]
	ambiguous := len(ranked) > 1 &&
		top.score-ranked[1].score < s.tuning.AmbiguityThreshold &&
		ranked[1].Value.Canonical() != top.Value.Canonical()

	competing := make([]Candidate, 0, len(ranked)-1)
	for _, r := range ranked[1:] {
		competing = append(competing, r.Candidate)
	}

	return ScoredField{
		Name:       fc.Spec.Name,
		Value:      top.Value,
		Confidence: top.score,
		Ambiguous:  ambiguous,
		Strategy:   top.Strategy,
		Raw:        top.Raw,
		Span:       top.Span,
		Competing:  competing,
		spec:       fc.Spec,
	}
}

// specificityFactor rewards anchored matches: the more context a match
// consumed beyond the bare value, the less likely it is accidental. Bounded
// to [0.75, 1.0], saturating at 20 runes of anchor.
func specificityFactor(c Candidate) float64 {
	anchor := utf8.RuneCountInString(c.Raw) - utf8.RuneCountInString(valueText(c.Value))
	if anchor < 0 {
		anchor = 0
	}
	frac := float64(anchor) / 20.0
	if frac > 1 {
		frac = 1
	}
	return 0.75 + 0.25*frac
}

func valueText(v Value) string {
	switch v.Kind {
	case TypeAmount:
		return v.Num.String()
	case TypeLineItems:
		return "" // the whole table is its own anchor
	default:
		return strings.TrimSpace(v.Str)
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
