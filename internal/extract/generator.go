package extract

import (
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

// FieldCandidates groups the candidates one field attracted, paired with its
// spec so downstream stages never re-resolve it.
type FieldCandidates struct {
	Spec       FieldSpec
	Candidates []Candidate
}

// Generator fans each field out to its registered strategies. A failing
// strategy becomes an extraction-strategy-error issue scoped to that field;
// the other strategies and fields proceed unaffected.
type Generator struct {
	registry *Registry
	logger   *slog.Logger
}

func NewGenerator(registry *Registry, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{registry: registry, logger: logger}
}

// Generate runs every registered strategy for every field spec, in
// declaration order. Candidates whose parsed type does not match the spec's
// declared type were already discarded inside the strategies; here the
// remaining guard is the field-name/type pairing itself.
func (g *Generator) Generate(doc *Document, specs []FieldSpec) ([]FieldCandidates, []ValidationIssue) {
	out := make([]FieldCandidates, 0, len(specs))
	var issues []ValidationIssue

	for _, spec := range specs {
		fc := FieldCandidates{Spec: spec}
		for _, id := range spec.Strategies {
			strat, ok := g.registry.Lookup(id)
			if !ok {
				issues = append(issues, ValidationIssue{
					Kind:     constants.IssueStrategyFailure,
					Severity: constants.SeverityWarning,
					Fields:   []string{spec.Name},
					Message:  fmt.Sprintf("unknown strategy %q configured for field %s", id, spec.Name),
				})
				continue
			}
			cands, err := findIsolated(strat, doc, spec)
			if err != nil {
				g.logger.Warn("generate.strategy.failed", "field", spec.Name, "strategy", id, "err", err)
				issues = append(issues, ValidationIssue{
					Kind:     constants.IssueStrategyFailure,
					Severity: constants.SeverityWarning,
					Fields:   []string{spec.Name},
					Message:  fmt.Sprintf("strategy %s failed for field %s: %v", id, spec.Name, err),
				})
				continue
			}
			for _, c := range cands {
				if c.Value.Kind != spec.Type {
					continue
				}
				fc.Candidates = append(fc.Candidates, c)
			}
		}
		out = append(out, fc)
	}
	return out, issues
}

// findIsolated converts a strategy panic into an error so one bad rule can
// never abort the document.
func findIsolated(s Strategy, doc *Document, spec FieldSpec) (cands []Candidate, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy %s panicked: %v", s.ID(), r)
		}
	}()
	return s.FindCandidates(doc, spec)
}
