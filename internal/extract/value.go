package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldType is the declared data type of a logical field.
type FieldType string

const (
	TypeString    FieldType = "string"
	TypeDate      FieldType = "date"
	TypeAmount    FieldType = "amount"
	TypeCurrency  FieldType = "currency"
	TypeLineItems FieldType = "lineItems"
)

// LineItem is one parsed row of an itemized table.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// Value is a typed field value. Exactly one representation is populated,
// selected by Kind. Monetary amounts never pass through float64.
type Value struct {
	Kind  FieldType
	Str   string          // TypeString, TypeCurrency, TypeDate (ISO-8601)
	Num   decimal.Decimal // TypeAmount
	Items []LineItem      // TypeLineItems
}

func StringValue(s string) Value   { return Value{Kind: TypeString, Str: s} }
func DateValue(iso string) Value   { return Value{Kind: TypeDate, Str: iso} }
func CurrencyValue(c string) Value { return Value{Kind: TypeCurrency, Str: strings.ToUpper(c)} }

func AmountValue(d decimal.Decimal) Value { return Value{Kind: TypeAmount, Num: d} }

func LineItemsValue(items []LineItem) Value { return Value{Kind: TypeLineItems, Items: items} }

// Canonical returns the normalized comparison form used for corroboration:
// two candidates agree when their canonical forms are equal.
func (v Value) Canonical() string {
	switch v.Kind {
	case TypeAmount:
		return v.Num.StringFixed(2)
	case TypeCurrency:
		return strings.ToUpper(v.Str)
	case TypeString:
		return strings.ToLower(strings.Join(strings.Fields(v.Str), " "))
	case TypeLineItems:
		sum := decimal.Zero
		for _, it := range v.Items {
			sum = sum.Add(it.Amount)
		}
		return fmt.Sprintf("items:%d:%s", len(v.Items), sum.StringFixed(2))
	default:
		return v.Str
	}
}

// MarshalJSON renders amounts as fixed two-decimal strings (never floats) and
// line items as an array; everything else is a plain string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case TypeAmount:
		return json.Marshal(v.Num.StringFixed(2))
	case TypeLineItems:
		return json.Marshal(v.Items)
	default:
		return json.Marshal(v.Str)
	}
}

// parseAmount turns a matched number token into a decimal under the locale's
// separator convention. With both separators present the rightmost one is the
// decimal mark; with a single separator the locale decides, except that a
// trailing group of exactly three digits is read as a thousands group under
// the opposite-convention separator.
func parseAmount(s string, loc Locale) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	lastComma := strings.LastIndexByte(s, ',')
	lastDot := strings.LastIndexByte(s, '.')
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		tail := len(s) - lastComma - 1
		if loc.DecimalComma || tail != 3 {
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastDot >= 0:
		tail := len(s) - lastDot - 1
		if loc.DecimalComma && tail == 3 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	if strings.Count(s, ".") > 1 {
		return decimal.Zero, fmt.Errorf("malformed amount %q", s)
	}
	return decimal.NewFromString(s)
}
