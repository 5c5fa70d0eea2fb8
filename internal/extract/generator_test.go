package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

func TestGenerator_UnknownStrategyIsAnIssueNotAFailure(t *testing.T) {
	doc := mustDoc(t, "Total: 12.00", "en-US")
	gen := NewGenerator(NewRegistry(), nil)

	specs := []FieldSpec{
		{Name: "total", Type: TypeAmount, Mandatory: true, Strategies: []string{"no-such-strategy", StrategyKeywordRegex}},
	}
	out, issues := gen.Generate(doc, specs)

	require.Len(t, issues, 1)
	assert.Equal(t, constants.IssueStrategyFailure, issues[0].Kind)
	assert.Equal(t, constants.SeverityWarning, issues[0].Severity)
	assert.Equal(t, []string{"total"}, issues[0].Fields)

	// the remaining strategy still ran
	require.Len(t, out, 1)
	require.NotEmpty(t, out[0].Candidates)
	assert.Equal(t, "12.00", out[0].Candidates[0].Value.Num.StringFixed(2))
}

func TestGenerator_MalformedPatternIsScopedToItsField(t *testing.T) {
	doc := mustDoc(t, "Total: 12.00", "en-US")
	gen := NewGenerator(NewRegistry(), nil)

	specs := []FieldSpec{
		{Name: "customRef", Type: TypeString, Strategies: []string{StrategyKeywordRegex}, Pattern: `([unclosed`},
		{Name: "total", Type: TypeAmount, Mandatory: true, Strategies: []string{StrategyKeywordRegex}},
	}
	out, issues := gen.Generate(doc, specs)

	require.Len(t, issues, 1)
	assert.Equal(t, constants.IssueStrategyFailure, issues[0].Kind)
	assert.Equal(t, []string{"customRef"}, issues[0].Fields)

	require.Len(t, out, 2)
	assert.Empty(t, out[0].Candidates)
	assert.NotEmpty(t, out[1].Candidates)
}

func TestGenerator_DropsTypeMismatchedCandidates(t *testing.T) {
	doc := mustDoc(t, "Ref: ABC-123", "en-US")
	gen := NewGenerator(NewRegistry(), nil)

	// the custom pattern matches, but the value parses as a string while the
	// field declares itself a date; the candidate must not survive
	specs := []FieldSpec{
		{Name: "weirdDate", Type: TypeDate, Strategies: []string{StrategyKeywordRegex}, Pattern: `Ref: (\S+)`},
	}
	out, issues := gen.Generate(doc, specs)
	assert.Empty(t, issues)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Candidates)
}

func TestRegistry_PriorityFollowsRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	assert.Less(t, r.Priority(StrategyKeywordRegex), r.Priority(StrategyLabelProximity))
	assert.Less(t, r.Priority(StrategyLabelProximity), r.Priority(StrategyPositional))
	assert.Less(t, r.Priority(StrategyPositional), r.Priority(StrategyLineTable))
	assert.Greater(t, r.Priority("unknown"), r.Priority(StrategyLineTable))

	_, ok := r.Lookup("unknown")
	assert.False(t, ok)
}
