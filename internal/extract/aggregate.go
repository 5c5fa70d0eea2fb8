package extract

import (
	"math"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

// ExtractionResult is the pipeline's terminal artifact: the chosen fields in
// spec declaration order, the issue list, and the overall verdict. Immutable
// once returned; rerunning the pipeline on identical input reproduces it
// byte for byte.
type ExtractionResult struct {
	Fields  []ScoredField          `json:"fields"`
	Issues  []ValidationIssue      `json:"issues"`
	Overall float64                `json:"overallConfidence"`
	Status  constants.ResultStatus `json:"status"`
	Error   string                 `json:"error,omitempty"`
}

// Aggregator computes the overall confidence and resolves the result status.
type Aggregator struct {
	tuning Tuning
}

func NewAggregator(tuning Tuning) *Aggregator {
	return &Aggregator{tuning: tuning}
}

// Assemble builds the final result. Overall confidence is the weighted mean
// of per-field confidences with mandatory fields weighted higher; a missing
// mandatory field enters the mean at zero, an absent optional field is left
// out entirely.
func (a *Aggregator) Assemble(specs []FieldSpec, fields []ScoredField, issues []ValidationIssue) *ExtractionResult {
	byName := make(map[string]ScoredField, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	var weighted, weights float64
	mandatoryMissing := false
	for _, spec := range specs {
		f, present := byName[spec.Name]
		switch {
		case present && spec.Mandatory:
			weighted += a.tuning.MandatoryWeight * f.Confidence
			weights += a.tuning.MandatoryWeight
		case present:
			weighted += a.tuning.OptionalWeight * f.Confidence
			weights += a.tuning.OptionalWeight
		case spec.Mandatory:
			weights += a.tuning.MandatoryWeight
			mandatoryMissing = true
		}
	}
	overall := 0.0
	if weights > 0 {
		overall = weighted / weights
	}
	// two decimals is plenty of precision and keeps serialized output tidy
	overall = math.Round(overall*100) / 100

	status := constants.StatusComplete
	if mandatoryMissing || hasErrorSeverity(issues) {
		status = constants.StatusPartial
	}

	if fields == nil {
		fields = []ScoredField{}
	}
	if issues == nil {
		issues = []ValidationIssue{}
	}
	return &ExtractionResult{
		Fields:  fields,
		Issues:  issues,
		Overall: overall,
		Status:  status,
	}
}

func hasErrorSeverity(issues []ValidationIssue) bool {
	for _, is := range issues {
		if is.Severity == constants.SeverityError {
			return true
		}
	}
	return false
}
