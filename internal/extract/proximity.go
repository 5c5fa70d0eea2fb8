package extract

import (
	"regexp"
	"strings"
)

var reLabelSep = regexp.MustCompile(`^[:#.\s-]+`)

// LabelProximity finds a configured label on a line and reads the value to
// its right; when nothing follows the label it falls back to the next
// non-empty line (label-above layouts).
type LabelProximity struct{}

func (LabelProximity) ID() string { return StrategyLabelProximity }

func (l LabelProximity) FindCandidates(doc *Document, spec FieldSpec) ([]Candidate, error) {
	if len(spec.Labels) == 0 {
		return nil, nil
	}
	var out []Candidate
	for i, line := range doc.Lines {
		lower := strings.ToLower(line)
		for _, label := range spec.Labels {
			idx := indexOfLabel(lower, strings.ToLower(label))
			if idx < 0 {
				continue
			}
			if c, ok := l.candidateAt(doc, spec, i, idx, len(label)); ok {
				out = append(out, c)
			}
			break // at most one candidate per line per field
		}
	}
	return out, nil
}

// candidateAt reads the value anchored by the label found at byte offset idx
// on line i.
func (LabelProximity) candidateAt(doc *Document, spec FieldSpec, i, idx, labelLen int) (Candidate, bool) {
	line := doc.Lines[i]
	lineStart := doc.LineStart(i)
	labelStart := lineStart + idx

	rest := line[idx+labelLen:]
	sep := reLabelSep.FindString(rest)
	valText := rest[len(sep):]
	valStart := labelStart + labelLen + len(sep)
	valSpan := Span{Start: valStart, End: valStart + len(valText)}

	if strings.TrimSpace(valText) == "" {
		// label-above layout: take the next non-empty line
		j := i + 1
		for j < len(doc.Lines) && strings.TrimSpace(doc.Lines[j]) == "" {
			j++
		}
		if j >= len(doc.Lines) {
			return Candidate{}, false
		}
		valText = doc.Lines[j]
		valSpan = doc.LineSpan(j)
	}

	value, span, ok := narrowTypedValue(doc, spec.Type, valText, valSpan)
	if !ok {
		return Candidate{}, false
	}
	return Candidate{
		Field:    spec.Name,
		Raw:      doc.Text[labelStart:span.End],
		Value:    value,
		Strategy: StrategyLabelProximity,
		Span:     span,
	}, true
}

// narrowTypedValue extracts the typed token from a label's value region and
// narrows the span to it.
func narrowTypedValue(doc *Document, t FieldType, text string, span Span) (Value, Span, bool) {
	switch t {
	case TypeAmount:
		ix := reAmountToken.FindStringIndex(text)
		if ix == nil {
			return Value{}, span, false
		}
		tok := text[ix[0]:ix[1]]
		tokSpan := Span{Start: span.Start + ix[0], End: span.Start + ix[1]}
		v, ok := parseTypedValue(doc, TypeAmount, tok, tokSpan)
		return v, tokSpan, ok
	case TypeDate:
		ann := doc.DateIn(span)
		if ann == nil {
			return Value{}, span, false
		}
		return DateValue(ann.ISO), ann.Span, true
	case TypeCurrency:
		ix := reCurrencyToken.FindStringIndex(strings.ToUpper(text))
		if ix == nil {
			return Value{}, span, false
		}
		tok := text[ix[0]:ix[1]]
		tokSpan := Span{Start: span.Start + ix[0], End: span.Start + ix[1]}
		v, ok := parseTypedValue(doc, TypeCurrency, tok, tokSpan)
		return v, tokSpan, ok
	case TypeString:
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return Value{}, span, false
		}
		lead := strings.Index(text, trimmed)
		tokSpan := Span{Start: span.Start + lead, End: span.Start + lead + len(trimmed)}
		return StringValue(trimmed), tokSpan, true
	}
	return Value{}, span, false
}

// indexOfLabel finds label in lower (both lowercase) at a word boundary,
// so "total" never anchors inside "subtotal".
func indexOfLabel(lower, label string) int {
	from := 0
	for {
		rel := strings.Index(lower[from:], label)
		if rel < 0 {
			return -1
		}
		idx := from + rel
		beforeOK := idx == 0 || !isWordByte(lower[idx-1])
		afterIdx := idx + len(label)
		afterOK := afterIdx >= len(lower) || !isWordByte(lower[afterIdx])
		if beforeOK && afterOK {
			return idx
		}
		from = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
