package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// moneyTokenPattern is amountPattern with a mandatory two-digit decimal part;
// bare integers at a line's end are too often phone numbers or ids.
const moneyTokenPattern = `(-?(?:\d{1,3}(?:[.,]\d{3})+|\d+)[.,]\d{2})`

var (
	reItemRow4 = regexp.MustCompile(`^(.{3,}?)\s+(\d+(?:[.,]\d+)?)\s+` + currencySymbolOpt + moneyTokenPattern + `\s+` + currencySymbolOpt + moneyTokenPattern + `$`)
	reItemRow2 = regexp.MustCompile(`^(.{3,}?)\s+` + currencySymbolOpt + moneyTokenPattern + `$`)

	reSummaryRow = regexp.MustCompile(`(?i)^\s*(sub[\s-]?total|total|tax|vat|gst|sales\s+tax|amount\s+due|balance\s+due|grand\s+total|shipping|discount|tip)\b`)
)

// LineTable parses itemized rows, either "description qty unit amount" or
// "description amount". Summary rows (Subtotal, Tax, Total, …) are never
// items.
type LineTable struct{}

func (LineTable) ID() string { return StrategyLineTable }

func (LineTable) FindCandidates(doc *Document, spec FieldSpec) ([]Candidate, error) {
	if spec.Type != TypeLineItems {
		return nil, nil
	}

	var (
		items      []LineItem
		firstLine  = -1
		lastLine   = -1
		sawColumns bool
	)
	for i, line := range doc.Lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || reSummaryRow.MatchString(trimmed) {
			continue
		}
		if m := reItemRow4.FindStringSubmatch(trimmed); m != nil {
			qty, err1 := parseAmount(m[2], doc.Locale)
			unit, err2 := parseAmount(m[3], doc.Locale)
			amount, err3 := parseAmount(m[4], doc.Locale)
			if err1 != nil || err2 != nil || err3 != nil {
				continue
			}
			items = append(items, LineItem{
				Description: strings.TrimSpace(m[1]),
				Quantity:    qty,
				UnitPrice:   unit,
				Amount:      amount,
			})
			sawColumns = true
		} else if m := reItemRow2.FindStringSubmatch(trimmed); m != nil {
			amount, err := parseAmount(m[2], doc.Locale)
			if err != nil {
				continue
			}
			items = append(items, LineItem{
				Description: strings.TrimSpace(m[1]),
				Quantity:    decimal.New(1, 0),
				UnitPrice:   amount,
				Amount:      amount,
			})
		} else {
			continue
		}
		if firstLine < 0 {
			firstLine = i
		}
		lastLine = i
	}

	if len(items) == 0 {
		return nil, nil
	}
	// a lone two-column row is too weak a signal to call a table
	if !sawColumns && len(items) < 2 {
		return nil, nil
	}

	span := Span{Start: doc.LineStart(firstLine), End: doc.LineSpan(lastLine).End}
	return []Candidate{{
		Field:    spec.Name,
		Raw:      doc.Text[span.Start:span.End],
		Value:    LineItemsValue(items),
		Strategy: StrategyLineTable,
		Span:     span,
	}}, nil
}
