package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// amountPattern matches a money token: optionally grouped thousands with an
// optional 1-2 digit decimal part, under either separator convention.
const amountPattern = `(-?(?:\d{1,3}(?:[.,]\d{3})+|\d+)(?:[.,]\d{1,2})?)`

const currencySymbolOpt = `[$£€]?\s*`

var (
	reAmountToken   = regexp.MustCompile(amountPattern)
	reCurrencyCode  = regexp.MustCompile(`^[A-Z]{3}$`)
	reCurrencyToken = regexp.MustCompile(`\b(USD|EUR|GBP|JPY|AUD|CAD|CHF|CNY|INR|NZD|SEK|NOK|DKK|SGD|HKD|MXN|BRL|ZAR)\b`)
)

// builtinPatterns are the keyword-anchored patterns for the stock fields.
// Capture group 1 is the value.
var builtinPatterns = map[string]string{
	"invoiceId":   `(?i)\b(?:INV|Invoice|Bill)\s*(?:No\.?|Number|#|ID)?[-:\s]*([A-Z0-9][A-Z0-9/-]{3,})`,
	"poNumber":    `(?i)\bP\.?O\.?\s*(?:No\.?|Number|#)?[-:\s]*([A-Z0-9][A-Z0-9/-]{2,})`,
	"invoiceDate": `\b((19|20)\d{2}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01]))\b`,
	"currency":    reCurrencyToken.String(),
	"subtotal":    `(?i)\bsub[\s-]?total\b[:\s]*` + currencySymbolOpt + amountPattern,
	"tax":         `(?i)\b(?:sales\s+tax|tax|vat|gst)\b[:\s]*` + currencySymbolOpt + amountPattern,
	"total":       `(?i)\b(?:grand\s+total|total\s+due|amount\s+due|balance\s+due|total)\b[:\s]*` + currencySymbolOpt + amountPattern,
}

// maxKeywordMatches caps candidates per field so a loose custom pattern stays
// finite.
const maxKeywordMatches = 8

// KeywordRegex runs keyword-anchored regular expressions over the whole
// normalized text. Custom fields supply their own pattern via FieldSpec;
// a malformed pattern is returned as an error for the generator to isolate.
type KeywordRegex struct{}

func (KeywordRegex) ID() string { return StrategyKeywordRegex }

func (KeywordRegex) FindCandidates(doc *Document, spec FieldSpec) ([]Candidate, error) {
	pattern := spec.Pattern
	builtin := false
	if pattern == "" {
		pattern = builtinPatterns[spec.Name]
		builtin = true
	}
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern for field %s: %w", spec.Name, err)
	}

	// stock id-like patterns must capture at least one digit, so that
	// "Invoice Date" does not read as an invoice id
	requireDigit := builtin && (spec.Name == "invoiceId" || spec.Name == "poNumber")

	var out []Candidate
	for _, ix := range re.FindAllStringSubmatchIndex(doc.Text, -1) {
		start, end := ix[0], ix[1]
		vs, ve := start, end
		if len(ix) >= 4 && ix[2] >= 0 {
			vs, ve = ix[2], ix[3]
		}
		if builtin && spec.Name == "total" && precededBySub(doc.Text, start) {
			continue
		}
		valText := doc.Text[vs:ve]
		if requireDigit && !containsDigit(valText) {
			continue
		}
		val, ok := parseTypedValue(doc, spec.Type, valText, Span{Start: vs, End: ve})
		if !ok {
			continue
		}
		out = append(out, Candidate{
			Field:    spec.Name,
			Raw:      doc.Text[start:end],
			Value:    val,
			Strategy: StrategyKeywordRegex,
			Span:     Span{Start: start, End: end},
		})
		if len(out) >= maxKeywordMatches {
			break
		}
	}
	return out, nil
}

// precededBySub reports whether the text just before pos ends in "sub",
// optionally followed by a hyphen or space ("Sub-Total", "sub total").
func precededBySub(text string, pos int) bool {
	head := strings.ToLower(text[:pos])
	head = strings.TrimRight(head, "- ")
	return strings.HasSuffix(head, "sub")
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// parseTypedValue converts matched text into a typed Value. Returning ok=false
// discards the candidate at generation time, so type-incompatible matches
// never reach the scorer.
func parseTypedValue(doc *Document, t FieldType, text string, span Span) (Value, bool) {
	text = strings.TrimSpace(text)
	switch t {
	case TypeAmount:
		d, err := parseAmount(text, doc.Locale)
		if err != nil {
			return Value{}, false
		}
		return AmountValue(d), true
	case TypeDate:
		if ann := doc.DateIn(span); ann != nil {
			return DateValue(ann.ISO), true
		}
		return Value{}, false
	case TypeCurrency:
		code := strings.ToUpper(text)
		if !reCurrencyCode.MatchString(code) {
			return Value{}, false
		}
		return CurrencyValue(code), true
	case TypeString:
		if text == "" {
			return Value{}, false
		}
		return StringValue(text), true
	}
	return Value{}, false
}
