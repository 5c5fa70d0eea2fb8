package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	extractorv1 "github.com/joseph-ayodele/invoice-extractor/gen/extractor/v1"
	"github.com/joseph-ayodele/invoice-extractor/internal/common"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

// ExtractorService exposes the pipeline over gRPC. The pipeline itself is
// stateless, so one service instance serves concurrent requests without
// coordination.
type ExtractorService struct {
	extractorv1.UnimplementedExtractorServiceServer
	pipeline *extract.Pipeline
	logger   *slog.Logger
}

func NewExtractorService(pipeline *extract.Pipeline, logger *slog.Logger) *ExtractorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractorService{pipeline: pipeline, logger: logger}
}

// Extract runs one document through the pipeline. Undecodable input still
// returns a normal response with status "failed"; transport-level errors are
// reserved for requests the service never attempted.
func (s *ExtractorService) Extract(ctx context.Context, req *extractorv1.ExtractRequest) (*extractorv1.ExtractResponse, error) {
	res, err := s.pipeline.Extract(ctx, extract.Request{
		Text:   req.GetText(),
		Locale: req.GetLocale(),
	})
	if err != nil {
		var encErr *extract.EncodingError
		if !errors.As(err, &encErr) {
			s.logger.Error("server.extract.failed", "err", err)
			return nil, common.InternalError("extraction failed")
		}
		// fatal decode path: res is the failed-status result
	}

	resp := &extractorv1.ExtractResponse{
		Fields:            make([]*extractorv1.Field, 0, len(res.Fields)),
		Issues:            make([]*extractorv1.Issue, 0, len(res.Issues)),
		OverallConfidence: res.Overall,
		Status:            string(res.Status),
		Error:             res.Error,
	}
	for _, f := range res.Fields {
		resp.Fields = append(resp.Fields, &extractorv1.Field{
			Name:       f.Name,
			Value:      fieldValueString(f),
			Confidence: f.Confidence,
			Ambiguous:  f.Ambiguous,
		})
	}
	for _, is := range res.Issues {
		resp.Issues = append(resp.Issues, &extractorv1.Issue{
			Kind:     string(is.Kind),
			Severity: string(is.Severity),
			Fields:   is.Fields,
			Message:  is.Message,
		})
	}

	s.logger.Info("server.extract.ok",
		"status", string(res.Status),
		"fields", len(res.Fields),
		"issues", len(res.Issues),
	)
	return resp, nil
}

// fieldValueString renders a field value for the wire: amounts as fixed
// two-decimal strings, line items as JSON, everything else verbatim.
func fieldValueString(f extract.ScoredField) string {
	switch f.Value.Kind {
	case extract.TypeAmount:
		return f.Value.Num.StringFixed(2)
	case extract.TypeLineItems:
		b, err := json.Marshal(f.Value.Items)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return f.Value.Str
	}
}
