package extract

import (
	"regexp"
	"strings"
)

const (
	// edgeWindow is how many bytes of the document head and tail count as
	// header/footer for currency detection.
	edgeWindow = 600
	// topLineCount bounds how far down a "near the top" heuristic looks.
	topLineCount = 10
)

var (
	reAllCapsLine = regexp.MustCompile(`^[A-Z][A-Z &.,'()/-]{2,}$`)
	reDocHeading  = regexp.MustCompile(`(?i)^\s*(tax\s+)?(invoice|receipt|statement|bill)\s*$`)
)

// Positional applies layout heuristics: supplier from the top of the
// document, dates from the first dated lines, currency from the header and
// footer windows. Fields with no layout signal yield nothing.
type Positional struct{}

func (Positional) ID() string { return StrategyPositional }

func (Positional) FindCandidates(doc *Document, spec FieldSpec) ([]Candidate, error) {
	switch {
	case spec.Type == TypeString && spec.Name == "supplierName":
		return supplierFromTop(doc, spec), nil
	case spec.Type == TypeDate:
		return dateNearTop(doc, spec), nil
	case spec.Type == TypeCurrency:
		return currencyFromEdges(doc, spec), nil
	}
	return nil, nil
}

// supplierFromTop reads the letterhead: the first non-empty line that is not
// a document heading. An all-caps company line is title-cased.
func supplierFromTop(doc *Document, spec FieldSpec) []Candidate {
	for i, line := range doc.Lines {
		if i >= topLineCount {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || reDocHeading.MatchString(trimmed) {
			continue
		}
		span := doc.LineSpan(i)
		if reAllCapsLine.MatchString(trimmed) {
			return []Candidate{{
				Field:    spec.Name,
				Raw:      trimmed,
				Value:    StringValue(titleCase(trimmed)),
				Strategy: StrategyPositional,
				Span:     span,
			}}
		}
		if len(strings.Fields(trimmed)) <= 6 && !strings.ContainsAny(trimmed, ":#") {
			return []Candidate{{
				Field:    spec.Name,
				Raw:      trimmed,
				Value:    StringValue(trimmed),
				Strategy: StrategyPositional,
				Span:     span,
			}}
		}
		break // first content line told us enough
	}
	return nil
}

// dateNearTop proposes the earliest date annotation in the top lines.
func dateNearTop(doc *Document, spec FieldSpec) []Candidate {
	limit := len(doc.Text)
	if topLineCount < len(doc.Lines) {
		limit = doc.LineStart(topLineCount)
	}
	for _, ann := range doc.Dates {
		if ann.Span.Start >= limit {
			break
		}
		return []Candidate{{
			Field:    spec.Name,
			Raw:      doc.Text[ann.Span.Start:ann.Span.End],
			Value:    DateValue(ann.ISO),
			Strategy: StrategyPositional,
			Span:     ann.Span,
		}}
	}
	return nil
}

// currencyFromEdges looks for ISO currency codes in the header and footer
// windows, where invoices customarily state their currency.
func currencyFromEdges(doc *Document, spec FieldSpec) []Candidate {
	text := doc.Text
	head := len(text)
	if head > edgeWindow {
		head = edgeWindow
	}
	tailStart := len(text) - edgeWindow
	if tailStart < head {
		tailStart = head
	}

	var out []Candidate
	seen := map[string]bool{}
	scan := func(off int, region string) {
		for _, ix := range reCurrencyToken.FindAllStringIndex(region, -1) {
			code := region[ix[0]:ix[1]]
			if seen[code] {
				continue
			}
			seen[code] = true
			out = append(out, Candidate{
				Field:    spec.Name,
				Raw:      code,
				Value:    CurrencyValue(code),
				Strategy: StrategyPositional,
				Span:     Span{Start: off + ix[0], End: off + ix[1]},
			})
			if len(out) >= 3 {
				return
			}
		}
	}
	scan(0, text[:head])
	if len(out) < 3 {
		scan(tailStart, text[tailStart:])
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 && r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 'a' + 'A'
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
