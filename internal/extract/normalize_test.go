package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FatalOnUndecodableInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty string", in: ""},
		{name: "whitespace only", in: "  \n\t  "},
		{name: "invalid utf-8", in: string([]byte{0xff, 0xfe, 'a'})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Normalize(tt.in, ParseLocale(""))
			require.Error(t, err)
			assert.Nil(t, doc)
			var encErr *EncodingError
			assert.True(t, errors.As(err, &encErr))
		})
	}
}

func TestNormalize_CollapsesWhitespaceButKeepsLines(t *testing.T) {
	doc, err := Normalize("ACME  CORP\t Ltd\n\n\n\n\nTotal:   28.05  \n", ParseLocale("en-US"))
	require.NoError(t, err)
	assert.Equal(t, "ACME CORP Ltd\n\nTotal: 28.05", doc.Text)
	assert.Len(t, doc.Lines, 3)
	assert.Equal(t, 0, doc.LineStart(0))
	assert.Equal(t, "Total: 28.05", doc.Lines[2])
}

func TestNormalize_StripsBoilerplateNoise(t *testing.T) {
	doc, err := Normalize("ACME CORP\n----------\nTotal: 10.00\nPage 1 of 2\n", ParseLocale(""))
	require.NoError(t, err)
	assert.NotContains(t, doc.Text, "----")
	assert.NotContains(t, doc.Text, "Page 1")
	assert.Contains(t, doc.Text, "Total: 10.00")
}

func TestNormalize_UnifiesUnicodeVariants(t *testing.T) {
	doc, err := Normalize("Total： １２３\nSupplier: “Acme” – Ltd", ParseLocale(""))
	require.NoError(t, err)
	assert.Contains(t, doc.Text, "Total: 123")
	assert.Contains(t, doc.Text, `"Acme" - Ltd`)
}

func TestNormalize_AnnotatesDates(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		locale  string
		wantISO string
	}{
		{name: "iso passes through", in: "Invoice Date: 2024-03-05", locale: "en-US", wantISO: "2024-03-05"},
		{name: "us numeric is month first", in: "Date: 03/05/2024", locale: "en-US", wantISO: "2024-03-05"},
		{name: "gb numeric is day first", in: "Date: 03/05/2024", locale: "en-GB", wantISO: "2024-05-03"},
		{name: "unambiguous day wins over locale", in: "Date: 31/12/2024", locale: "en-US", wantISO: "2024-12-31"},
		{name: "textual month day year", in: "Issued March 5, 2024", locale: "en-US", wantISO: "2024-03-05"},
		{name: "textual day month year", in: "Issued 5 March 2024", locale: "en-GB", wantISO: "2024-03-05"},
		{name: "two digit year", in: "Date: 12/31/24", locale: "en-US", wantISO: "2024-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Normalize(tt.in, ParseLocale(tt.locale))
			require.NoError(t, err)
			require.NotEmpty(t, doc.Dates)
			assert.Equal(t, tt.wantISO, doc.Dates[0].ISO)
			// the original span survives annotation
			span := doc.Dates[0].Span
			assert.NotEmpty(t, doc.Text[span.Start:span.End])
		})
	}
}

func TestNormalize_UnparseableTokensPassThrough(t *testing.T) {
	doc, err := Normalize("Date: 99/99/9999 gibberish ~~ ", ParseLocale(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Dates)
	assert.Contains(t, doc.Text, "99/99/9999")
}

func TestNormalize_DeterministicAnnotationOrder(t *testing.T) {
	in := "From 2024-01-02 until 2024-02-03 and 01/05/2024"
	a, err := Normalize(in, ParseLocale("en-US"))
	require.NoError(t, err)
	b, err := Normalize(in, ParseLocale("en-US"))
	require.NoError(t, err)
	require.Equal(t, a.Dates, b.Dates)
	for i := 1; i < len(a.Dates); i++ {
		assert.Less(t, a.Dates[i-1].Span.Start, a.Dates[i].Span.Start)
	}
}
