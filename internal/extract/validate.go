package extract

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

// ValidationIssue describes one detected inconsistency. Issues are purely
// additive: no rule ever alters a scored field.
type ValidationIssue struct {
	Kind     constants.IssueKind `json:"kind"`
	Severity constants.Severity  `json:"severity"`
	Fields   []string            `json:"fields,omitempty"`
	Message  string              `json:"message"`
}

// Rule is one independent validation rule over the full field set.
type Rule struct {
	Name string
	Eval func(fs *fieldIndex) []ValidationIssue
}

// fieldIndex gives rules deterministic, order-preserving access to the
// document's specs and scored fields.
type fieldIndex struct {
	specs  []FieldSpec
	fields []ScoredField
	byName map[string]ScoredField
	tuning Tuning
}

func (ix *fieldIndex) get(name string) (ScoredField, bool) {
	f, ok := ix.byName[name]
	return f, ok
}

func (ix *fieldIndex) amount(name string) (decimal.Decimal, bool) {
	f, ok := ix.byName[name]
	if !ok || f.Value.Kind != TypeAmount {
		return decimal.Zero, false
	}
	return f.Value.Num, true
}

// Validator runs a fixed, ordered list of rule categories so that issue
// ordering in the output is stable and testable.
type Validator struct {
	tuning Tuning
	rules  []Rule
}

func NewValidator(tuning Tuning) *Validator {
	v := &Validator{tuning: tuning}
	v.rules = []Rule{
		{Name: "presence", Eval: presenceRule},
		{Name: "format", Eval: formatRule},
		{Name: "reconciliation", Eval: reconciliationRule},
		{Name: "plausibility", Eval: plausibilityRule},
		{Name: "confidence-threshold", Eval: confidenceRule},
	}
	return v
}

// Validate evaluates every rule against the scored field set and returns the
// concatenated issues in rule order.
func (v *Validator) Validate(specs []FieldSpec, fields []ScoredField) []ValidationIssue {
	ix := &fieldIndex{
		specs:  specs,
		fields: fields,
		byName: make(map[string]ScoredField, len(fields)),
		tuning: v.tuning,
	}
	for _, f := range fields {
		ix.byName[f.Name] = f
	}

	var issues []ValidationIssue
	for _, rule := range v.rules {
		issues = append(issues, rule.Eval(ix)...)
	}
	return issues
}

// presenceRule: every mandatory field either resolved or is reported missing,
// never silently absent.
func presenceRule(ix *fieldIndex) []ValidationIssue {
	var issues []ValidationIssue
	for _, spec := range ix.specs {
		if !spec.Mandatory {
			continue
		}
		if _, ok := ix.get(spec.Name); !ok {
			issues = append(issues, ValidationIssue{
				Kind:     constants.IssueMissingField,
				Severity: constants.SeverityError,
				Fields:   []string{spec.Name},
				Message:  fmt.Sprintf("mandatory field %s could not be extracted", spec.Name),
			})
		}
	}
	return issues
}

var reISOValue = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// formatRule: each resolved value must satisfy its declared type grammar.
func formatRule(ix *fieldIndex) []ValidationIssue {
	var issues []ValidationIssue
	for _, f := range ix.fields {
		switch f.Value.Kind {
		case TypeDate:
			if !reISOValue.MatchString(f.Value.Str) {
				issues = append(issues, formatIssue(f.Name, "date %q is not in ISO-8601 form", f.Value.Str))
			} else if _, err := time.Parse("2006-01-02", f.Value.Str); err != nil {
				issues = append(issues, formatIssue(f.Name, "date %q is not a valid calendar date", f.Value.Str))
			}
		case TypeCurrency:
			if !reCurrencyCode.MatchString(f.Value.Str) {
				issues = append(issues, formatIssue(f.Name, "currency %q is not an ISO 4217 code", f.Value.Str))
			}
		case TypeAmount:
			if f.Value.Num.IsNegative() && f.Name != "lineItems" {
				issues = append(issues, formatIssue(f.Name, "amount %s is negative", f.Value.Num.StringFixed(2)))
			}
		case TypeString:
			if f.Value.Str == "" {
				issues = append(issues, formatIssue(f.Name, "value is empty"))
			}
		}
	}
	return issues
}

func formatIssue(field, format string, args ...any) ValidationIssue {
	return ValidationIssue{
		Kind:     constants.IssueFormatError,
		Severity: constants.SeverityError,
		Fields:   []string{field},
		Message:  fmt.Sprintf(format, args...),
	}
}

// reconciliationRule: line items must sum to the subtotal, and
// subtotal + tax must equal the total, within the rounding tolerance.
// Mismatches within 1% of the total downgrade to a warning.
func reconciliationRule(ix *fieldIndex) []ValidationIssue {
	var issues []ValidationIssue
	tol := ix.tuning.ReconcileTolerance

	if items, ok := ix.get("lineItems"); ok && items.Value.Kind == TypeLineItems {
		if subtotal, ok := ix.amount("subtotal"); ok {
			sum := decimal.Zero
			for _, it := range items.Value.Items {
				sum = sum.Add(it.Amount)
			}
			if diff := sum.Sub(subtotal).Abs(); diff.GreaterThan(tol) {
				issues = append(issues, ValidationIssue{
					Kind:     constants.IssueReconciliation,
					Severity: reconcileSeverity(diff, subtotal),
					Fields:   []string{"lineItems", "subtotal"},
					Message: fmt.Sprintf("line items sum to %s but subtotal is %s",
						sum.StringFixed(2), subtotal.StringFixed(2)),
				})
			}
		}
	}

	subtotal, okSub := ix.amount("subtotal")
	tax, okTax := ix.amount("tax")
	total, okTotal := ix.amount("total")
	if okSub && okTax && okTotal {
		expected := subtotal.Add(tax)
		if diff := expected.Sub(total).Abs(); diff.GreaterThan(tol) {
			issues = append(issues, ValidationIssue{
				Kind:     constants.IssueReconciliation,
				Severity: reconcileSeverity(diff, total),
				Fields:   []string{"subtotal", "tax", "total"},
				Message: fmt.Sprintf("subtotal %s + tax %s = %s does not reconcile with total %s",
					subtotal.StringFixed(2), tax.StringFixed(2), expected.StringFixed(2), total.StringFixed(2)),
			})
		}
	}
	return issues
}

// reconcileSeverity downgrades small mismatches: within 1% of the reference
// amount is a warning, anything larger an error.
func reconcileSeverity(diff, reference decimal.Decimal) constants.Severity {
	if reference.IsZero() {
		return constants.SeverityError
	}
	onePercent := reference.Abs().Mul(decimal.New(1, -2))
	if diff.LessThanOrEqual(onePercent) {
		return constants.SeverityWarning
	}
	return constants.SeverityError
}

// maxPlausibleAmount bounds single-document totals; anything above it is
// almost certainly a mis-parsed id or account number.
var maxPlausibleAmount = decimal.New(1, 9) // 1e9

// plausibilityRule: cross-field sanity checks that are suspicious rather
// than provably wrong.
func plausibilityRule(ix *fieldIndex) []ValidationIssue {
	var issues []ValidationIssue

	inv, okInv := ix.get("invoiceDate")
	due, okDue := ix.get("dueDate")
	if okInv && okDue && inv.Value.Kind == TypeDate && due.Value.Kind == TypeDate {
		invT, err1 := time.Parse("2006-01-02", inv.Value.Str)
		dueT, err2 := time.Parse("2006-01-02", due.Value.Str)
		if err1 == nil && err2 == nil && dueT.Before(invT) {
			issues = append(issues, ValidationIssue{
				Kind:     constants.IssuePlausibility,
				Severity: constants.SeverityWarning,
				Fields:   []string{"invoiceDate", "dueDate"},
				Message:  fmt.Sprintf("due date %s is before invoice date %s", due.Value.Str, inv.Value.Str),
			})
		}
	}

	for _, name := range []string{"subtotal", "tax", "total"} {
		if amt, ok := ix.amount(name); ok && amt.Abs().GreaterThan(maxPlausibleAmount) {
			issues = append(issues, ValidationIssue{
				Kind:     constants.IssuePlausibility,
				Severity: constants.SeverityWarning,
				Fields:   []string{name},
				Message:  fmt.Sprintf("%s %s exceeds the plausible range", name, amt.StringFixed(2)),
			})
		}
	}
	return issues
}

// confidenceRule: flag fields whose selection is weak, either because the
// score is under the floor or because the top two candidates were too close.
func confidenceRule(ix *fieldIndex) []ValidationIssue {
	var issues []ValidationIssue
	for _, f := range ix.fields {
		switch {
		case f.Ambiguous:
			issues = append(issues, ValidationIssue{
				Kind:     constants.IssueLowConfidence,
				Severity: constants.SeverityInfo,
				Fields:   []string{f.Name},
				Message: fmt.Sprintf("field %s chosen at %.2f with a close competing candidate",
					f.Name, f.Confidence),
			})
		case f.Confidence < ix.tuning.LowConfidenceFloor:
			issues = append(issues, ValidationIssue{
				Kind:     constants.IssueLowConfidence,
				Severity: constants.SeverityInfo,
				Fields:   []string{f.Name},
				Message: fmt.Sprintf("field %s confidence %.2f is below the %.2f floor",
					f.Name, f.Confidence, ix.tuning.LowConfidenceFloor),
			})
		}
	}
	return issues
}
