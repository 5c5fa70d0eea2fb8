package extract_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

const sampleInvoice = `ACME SUPPLIES LTD
123 Market Street, Springfield

INVOICE

Invoice Number: INV-2024-0042
Invoice Date: 2024-03-05
Due Date: 2024-04-04
PO Number: PO-7781

Widget assembly 2 10.00 20.00
Gasket set 1 5.50 5.50

Subtotal: 25.50
Tax: 2.55
Total: 28.05

Currency: USD
Thank you for your business.
`

func fieldByName(res *extract.ExtractionResult, name string) (extract.ScoredField, bool) {
	for _, f := range res.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return extract.ScoredField{}, false
}

func newTestPipeline() *extract.Pipeline {
	return extract.NewPipeline(nil, extract.DefaultTuning(), nil)
}

func TestPipeline_ExtractsFullInvoice(t *testing.T) {
	res, err := newTestPipeline().Extract(context.Background(), extract.Request{
		Text:   sampleInvoice,
		Locale: "en-US",
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, constants.StatusComplete, res.Status)
	assert.Empty(t, res.Error)

	wantStr := map[string]string{
		"invoiceId":    "INV-2024-0042",
		"invoiceDate":  "2024-03-05",
		"dueDate":      "2024-04-04",
		"supplierName": "Acme Supplies Ltd",
		"poNumber":     "PO-7781",
		"currency":     "USD",
	}
	for name, want := range wantStr {
		f, ok := fieldByName(res, name)
		require.True(t, ok, "field %s missing", name)
		assert.Equal(t, want, f.Value.Str, "field %s", name)
	}

	wantAmt := map[string]string{
		"subtotal": "25.50",
		"tax":      "2.55",
		"total":    "28.05",
	}
	for name, want := range wantAmt {
		f, ok := fieldByName(res, name)
		require.True(t, ok, "field %s missing", name)
		assert.Equal(t, want, f.Value.Num.StringFixed(2), "field %s", name)
	}

	items, ok := fieldByName(res, "lineItems")
	require.True(t, ok)
	assert.Len(t, items.Value.Items, 2)

	// consistent arithmetic: nothing to reconcile
	for _, is := range res.Issues {
		assert.NotEqual(t, constants.IssueReconciliation, is.Kind)
		assert.NotEqual(t, constants.IssueMissingField, is.Kind)
	}
	assert.Greater(t, res.Overall, 0.6)
	assert.LessOrEqual(t, res.Overall, 1.0)
}

func TestPipeline_FieldsFollowSpecOrder(t *testing.T) {
	res, err := newTestPipeline().Extract(context.Background(), extract.Request{Text: sampleInvoice})
	require.NoError(t, err)

	pos := map[string]int{}
	for i, spec := range extract.DefaultFieldSpecs() {
		pos[spec.Name] = i
	}
	for i := 1; i < len(res.Fields); i++ {
		assert.Less(t, pos[res.Fields[i-1].Name], pos[res.Fields[i].Name])
	}
}

func TestPipeline_ConfidencesStayInRange(t *testing.T) {
	res, err := newTestPipeline().Extract(context.Background(), extract.Request{Text: sampleInvoice})
	require.NoError(t, err)
	for _, f := range res.Fields {
		assert.GreaterOrEqual(t, f.Confidence, 0.0, "field %s", f.Name)
		assert.LessOrEqual(t, f.Confidence, 1.0, "field %s", f.Name)
	}
}

func TestPipeline_IsDeterministic(t *testing.T) {
	p := newTestPipeline()
	req := extract.Request{Text: sampleInvoice, Locale: "en-US"}

	first, err := p.Extract(context.Background(), req)
	require.NoError(t, err)
	second, err := p.Extract(context.Background(), req)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestPipeline_UndecodableInputFailsWithTypedError(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "blank", text: "   \n\t "},
		{name: "invalid utf-8", text: string([]byte{0xff, 0xfe})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newTestPipeline().Extract(context.Background(), extract.Request{Text: tt.text})

			var encErr *extract.EncodingError
			require.True(t, errors.As(err, &encErr))

			require.NotNil(t, res)
			assert.Equal(t, constants.StatusFailed, res.Status)
			assert.Empty(t, res.Fields)
			require.Len(t, res.Issues, 1)
			assert.Equal(t, constants.IssueEncoding, res.Issues[0].Kind)
			assert.NotEmpty(t, res.Error)

			// empty collections serialize as [], never null
			b, err := json.Marshal(res)
			require.NoError(t, err)
			assert.Contains(t, string(b), `"fields":[]`)
		})
	}
}

func TestPipeline_BadCustomPatternIsIsolated(t *testing.T) {
	specs := append(extract.DefaultFieldSpecs(), extract.FieldSpec{
		Name:       "customRef",
		Type:       extract.TypeString,
		Strategies: []string{extract.StrategyKeywordRegex},
		Pattern:    `([unclosed`,
	})

	res, err := newTestPipeline().Extract(context.Background(), extract.Request{
		Text:   sampleInvoice,
		Locale: "en-US",
		Specs:  specs,
	})
	require.NoError(t, err)
	assert.NotEqual(t, constants.StatusFailed, res.Status)

	var strategyIssues []string
	for _, is := range res.Issues {
		if is.Kind == constants.IssueStrategyFailure {
			strategyIssues = append(strategyIssues, is.Fields...)
		}
	}
	assert.Equal(t, []string{"customRef"}, strategyIssues)

	// the rest of the document extracted normally
	f, ok := fieldByName(res, "total")
	require.True(t, ok)
	assert.Equal(t, "28.05", f.Value.Num.StringFixed(2))
}

func TestPipeline_MandatoryFieldsAreAccountedFor(t *testing.T) {
	res, err := newTestPipeline().Extract(context.Background(), extract.Request{
		Text: "lorem ipsum dolor sit amet\nnothing extractable here",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPartial, res.Status)

	missing := map[string]bool{}
	for _, is := range res.Issues {
		if is.Kind == constants.IssueMissingField {
			for _, f := range is.Fields {
				missing[f] = true
			}
		}
	}
	for _, spec := range extract.DefaultFieldSpecs() {
		if !spec.Mandatory {
			continue
		}
		_, present := fieldByName(res, spec.Name)
		assert.True(t, present != missing[spec.Name],
			"mandatory field %s must be either resolved or reported missing", spec.Name)
	}
}

func TestPipeline_DecimalCommaLocale(t *testing.T) {
	text := "Rechnung GmbH\nSubtotal: 1.234,56\nTax: 0,00\nTotal: 1.234,56\n"
	res, err := newTestPipeline().Extract(context.Background(), extract.Request{
		Text:   text,
		Locale: "de-DE",
	})
	require.NoError(t, err)

	f, ok := fieldByName(res, "subtotal")
	require.True(t, ok)
	assert.Equal(t, "1234.56", f.Value.Num.String())

	for _, is := range res.Issues {
		assert.NotEqual(t, constants.IssueReconciliation, is.Kind)
	}
}
