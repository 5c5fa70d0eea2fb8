package extract

// Span marks a half-open byte range [Start, End) in a Document's normalized text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// DateAnnotation records a date token recognized during normalization together
// with its canonical ISO-8601 reading. The original span is left intact so
// positional strategies can still reason about layout.
type DateAnnotation struct {
	Span Span
	ISO  string // YYYY-MM-DD
}

// Document is the normalized view of one input text. It is immutable once
// built by Normalize; strategies must never modify it.
type Document struct {
	Raw    string
	Text   string
	Lines  []string
	Locale Locale
	Dates  []DateAnnotation

	lineStarts []int
}

// LineStart returns the byte offset of line i within Text.
func (d *Document) LineStart(i int) int {
	if i < 0 || i >= len(d.lineStarts) {
		return len(d.Text)
	}
	return d.lineStarts[i]
}

// LineSpan returns the span of line i within Text.
func (d *Document) LineSpan(i int) Span {
	start := d.LineStart(i)
	return Span{Start: start, End: start + len(d.Lines[i])}
}

// DateIn returns the first date annotation fully contained in the given span,
// or nil when none exists. Annotations are kept sorted by start offset.
func (d *Document) DateIn(s Span) *DateAnnotation {
	for i := range d.Dates {
		ann := d.Dates[i]
		if ann.Span.Start >= s.Start && ann.Span.End <= s.End {
			return &ann
		}
	}
	return nil
}
