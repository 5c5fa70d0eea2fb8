package extract

import (
	"context"
	"errors"
	"log/slog"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

// Request is one extraction invocation. Specs may override the pipeline's
// configured field set; nil means "use the defaults".
type Request struct {
	Text   string
	Locale string
	Specs  []FieldSpec
}

// Pipeline wires the five stages: Normalizer → CandidateGenerator →
// ConfidenceScorer → Validator → Aggregator. A Pipeline is safe for
// concurrent use: it holds only read-only configuration, and every
// invocation is a pure function of its request.
type Pipeline struct {
	logger     *slog.Logger
	tuning     Tuning
	specs      []FieldSpec
	generator  *Generator
	scorer     *Scorer
	validator  *Validator
	aggregator *Aggregator
}

func NewPipeline(logger *slog.Logger, tuning Tuning, specs []FieldSpec) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if specs == nil {
		specs = DefaultFieldSpecs()
	}
	registry := NewRegistry()
	return &Pipeline{
		logger:     logger,
		tuning:     tuning,
		specs:      specs,
		generator:  NewGenerator(registry, logger),
		scorer:     NewScorer(tuning, registry),
		validator:  NewValidator(tuning),
		aggregator: NewAggregator(tuning),
	}
}

// Extract turns one text into a structured, confidence-annotated, validated
// record. The only error it ever returns is an *EncodingError for input that
// cannot be decoded; the accompanying result then carries status "failed".
// Every other irregularity is a ValidationIssue inside a normal result.
func (p *Pipeline) Extract(ctx context.Context, req Request) (*ExtractionResult, error) {
	specs := req.Specs
	if specs == nil {
		specs = p.specs
	}
	loc := ParseLocale(req.Locale)

	doc, err := Normalize(req.Text, loc)
	if err != nil {
		var encErr *EncodingError
		if errors.As(err, &encErr) {
			p.logger.Warn("extract.failed", "reason", encErr.Reason)
			return failedResult(encErr), encErr
		}
		return nil, err
	}

	candidates, genIssues := p.generator.Generate(doc, specs)
	fields := p.scorer.Score(candidates)
	issues := append(genIssues, p.validator.Validate(specs, fields)...)
	res := p.aggregator.Assemble(specs, fields, issues)

	p.logger.Debug("extract.ok",
		"status", string(res.Status),
		"fields", len(res.Fields),
		"issues", len(res.Issues),
		"overall", res.Overall,
	)
	return res, nil
}

// failedResult is the fatal-path artifact: no fields, no issues beyond the
// encoding error itself.
func failedResult(encErr *EncodingError) *ExtractionResult {
	return &ExtractionResult{
		Fields: []ScoredField{},
		Issues: []ValidationIssue{{
			Kind:     constants.IssueEncoding,
			Severity: constants.SeverityError,
			Message:  encErr.Error(),
		}},
		Overall: 0,
		Status:  constants.StatusFailed,
		Error:   encErr.Error(),
	}
}
