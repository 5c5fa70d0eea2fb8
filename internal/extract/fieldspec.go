package extract

// FieldSpec describes one logical field to extract. The active set is loaded
// once at startup and treated as read-only afterwards; every pipeline
// invocation receives it explicitly so tests can inject alternates.
type FieldSpec struct {
	Name      string    `json:"name" yaml:"name"`
	Type      FieldType `json:"type" yaml:"type"`
	Mandatory bool      `json:"mandatory" yaml:"mandatory"`

	// Strategies lists the extraction strategies to run for this field, by id,
	// in priority order. Unknown ids produce a per-field issue, not a failure.
	Strategies []string `json:"strategies" yaml:"strategies"`

	// Labels anchor the label-proximity strategy ("Invoice No", "Total Due", …).
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Pattern overrides the keyword-regex strategy's built-in pattern for this
	// field. Capture group 1, when present, is the value; otherwise the whole
	// match is. A malformed pattern is reported as an extraction-strategy-error
	// scoped to this field.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// DefaultFieldSpecs returns the stock invoice field set, in declaration order.
// ExtractionResult fields are emitted in this order.
func DefaultFieldSpecs() []FieldSpec {
	return []FieldSpec{
		{
			Name:       "invoiceId",
			Type:       TypeString,
			Mandatory:  true,
			Strategies: []string{StrategyKeywordRegex, StrategyLabelProximity},
			Labels:     []string{"invoice number", "invoice no", "invoice #", "invoice id", "invoice ref"},
		},
		{
			Name:       "invoiceDate",
			Type:       TypeDate,
			Mandatory:  true,
			Strategies: []string{StrategyLabelProximity, StrategyKeywordRegex, StrategyPositional},
			Labels:     []string{"invoice date", "issue date", "date of issue", "issued", "date"},
		},
		{
			Name:       "dueDate",
			Type:       TypeDate,
			Mandatory:  false,
			Strategies: []string{StrategyLabelProximity},
			Labels:     []string{"due date", "payment due", "due by", "payable by"},
		},
		{
			Name:       "supplierName",
			Type:       TypeString,
			Mandatory:  true,
			Strategies: []string{StrategyLabelProximity, StrategyPositional},
			Labels:     []string{"supplier", "vendor", "seller", "bill from", "from"},
		},
		{
			Name:       "poNumber",
			Type:       TypeString,
			Mandatory:  false,
			Strategies: []string{StrategyKeywordRegex, StrategyLabelProximity},
			Labels:     []string{"po number", "purchase order", "po #", "po no"},
		},
		{
			Name:       "currency",
			Type:       TypeCurrency,
			Mandatory:  true,
			Strategies: []string{StrategyKeywordRegex, StrategyPositional},
			Labels:     []string{"currency"},
		},
		{
			Name:       "subtotal",
			Type:       TypeAmount,
			Mandatory:  true,
			Strategies: []string{StrategyKeywordRegex, StrategyLabelProximity},
			Labels:     []string{"subtotal", "sub-total", "sub total", "net amount", "net total"},
		},
		{
			Name:       "tax",
			Type:       TypeAmount,
			Mandatory:  true,
			Strategies: []string{StrategyKeywordRegex, StrategyLabelProximity},
			Labels:     []string{"tax", "vat", "gst", "sales tax", "tax amount"},
		},
		{
			Name:       "total",
			Type:       TypeAmount,
			Mandatory:  true,
			Strategies: []string{StrategyKeywordRegex, StrategyLabelProximity},
			Labels:     []string{"total due", "amount due", "grand total", "balance due", "total"},
		},
		{
			Name:       "lineItems",
			Type:       TypeLineItems,
			Mandatory:  false,
			Strategies: []string{StrategyLineTable},
		},
	}
}
