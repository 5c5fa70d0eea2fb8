package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

func TestAggregator_WeightedOverallConfidence(t *testing.T) {
	specs := []FieldSpec{
		{Name: "m1", Type: TypeString, Mandatory: true},
		{Name: "m2", Type: TypeString, Mandatory: true},
		{Name: "o1", Type: TypeString},
	}
	agg := NewAggregator(DefaultTuning())

	// m2 missing: its weight still counts, at zero confidence
	res := agg.Assemble(specs, []ScoredField{
		{Name: "m1", Value: StringValue("a"), Confidence: 1.0},
		{Name: "o1", Value: StringValue("b"), Confidence: 0.5},
	}, nil)
	assert.InDelta(t, 0.5, res.Overall, 1e-9) // (2·1.0 + 1·0.5) / (2+2+1)
	assert.Equal(t, constants.StatusPartial, res.Status)

	// absent optionals are left out of the mean entirely
	res = agg.Assemble(specs, []ScoredField{
		{Name: "m1", Value: StringValue("a"), Confidence: 0.8},
		{Name: "m2", Value: StringValue("b"), Confidence: 0.6},
	}, nil)
	assert.InDelta(t, 0.7, res.Overall, 1e-9)
	assert.Equal(t, constants.StatusComplete, res.Status)
}

func TestAggregator_OverallIsRoundedToTwoDecimals(t *testing.T) {
	specs := []FieldSpec{{Name: "m1", Type: TypeString, Mandatory: true}}
	res := NewAggregator(DefaultTuning()).Assemble(specs, []ScoredField{
		{Name: "m1", Value: StringValue("a"), Confidence: 0.6789},
	}, nil)
	assert.Equal(t, 0.68, res.Overall)
}

func TestAggregator_ErrorSeverityDowngradesStatus(t *testing.T) {
	specs := []FieldSpec{{Name: "m1", Type: TypeString, Mandatory: true}}
	fields := []ScoredField{{Name: "m1", Value: StringValue("a"), Confidence: 0.9}}
	agg := NewAggregator(DefaultTuning())

	res := agg.Assemble(specs, fields, []ValidationIssue{
		{Kind: constants.IssuePlausibility, Severity: constants.SeverityWarning},
	})
	assert.Equal(t, constants.StatusComplete, res.Status)

	res = agg.Assemble(specs, fields, []ValidationIssue{
		{Kind: constants.IssueReconciliation, Severity: constants.SeverityError},
	})
	assert.Equal(t, constants.StatusPartial, res.Status)
}

func TestAggregator_EmptySlicesNotNil(t *testing.T) {
	res := NewAggregator(DefaultTuning()).Assemble(nil, nil, nil)
	assert.NotNil(t, res.Fields)
	assert.NotNil(t, res.Issues)
	assert.Zero(t, res.Overall)
}
