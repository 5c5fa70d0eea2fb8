package constants

// IssueKind classifies a validation issue in an extraction result.
type IssueKind string

// Stable values (serialized into results and job history).
const (
	IssueMissingField    IssueKind = "missing-field"             // mandatory field absent
	IssueFormatError     IssueKind = "format-error"              // value violates its type grammar
	IssueReconciliation  IssueKind = "reconciliation-error"      // amounts do not add up
	IssuePlausibility    IssueKind = "plausibility-warning"      // value outside a sane range
	IssueLowConfidence   IssueKind = "low-confidence-selection"  // chosen value below the floor or ambiguous
	IssueStrategyFailure IssueKind = "extraction-strategy-error" // one strategy failed for one field
	IssueEncoding        IssueKind = "encoding-error"            // input could not be decoded (fatal)
)

// Severity ranks how much an issue should worry a consumer.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)
