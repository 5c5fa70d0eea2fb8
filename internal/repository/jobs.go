package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

// Job is one row of batch processing history. Only extraction outcomes are
// recorded; document text is never persisted.
type Job struct {
	ID                uuid.UUID
	Source            string
	Status            constants.JobStatus
	OverallConfidence float64
	FieldCount        int
	IssueCount        int
	ErrorMessage      string
	StartedAt         time.Time
	FinishedAt        *time.Time
}

// JobRepository records extraction runs in the sqlite store.
type JobRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewJobRepository(db *sql.DB, logger *slog.Logger) *JobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobRepository{db: db, logger: logger}
}

// Start inserts a RUNNING job row and returns its id.
func (r *JobRepository) Start(ctx context.Context, source string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO extract_jobs (id, source, status, started_at) VALUES (?, ?, ?, ?)`,
		id.String(), source, string(constants.JobStatusRunning), time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("start job: %w", err)
	}
	r.logger.Debug("job.started", "job_id", id, "source", source)
	return id, nil
}

// FinishSuccess marks a job OK and records the result summary.
func (r *JobRepository) FinishSuccess(ctx context.Context, id uuid.UUID, res *extract.ExtractionResult) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE extract_jobs
		 SET status = ?, overall_confidence = ?, field_count = ?, issue_count = ?, finished_at = ?
		 WHERE id = ?`,
		string(constants.JobStatusOK), res.Overall, len(res.Fields), len(res.Issues),
		time.Now().UTC(), id.String(),
	)
	if err != nil {
		return fmt.Errorf("finish job: %w", err)
	}
	r.logger.Debug("job.ok", "job_id", id, "overall", res.Overall, "issues", len(res.Issues))
	return nil
}

// FinishFailure marks a job FAILED with its error message.
func (r *JobRepository) FinishFailure(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE extract_jobs SET status = ?, error_message = ?, finished_at = ? WHERE id = ?`,
		string(constants.JobStatusFailed), message, time.Now().UTC(), id.String(),
	)
	if err != nil {
		return fmt.Errorf("fail job: %w", err)
	}
	r.logger.Debug("job.failed", "job_id", id, "err", message)
	return nil
}

// List returns the most recent jobs, newest first.
func (r *JobRepository) List(ctx context.Context, limit int) ([]Job, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source, status, overall_confidence, field_count, issue_count, error_message, started_at, finished_at
		 FROM extract_jobs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var (
			j        Job
			idStr    string
			status   string
			finished sql.NullTime
		)
		if err := rows.Scan(&idStr, &j.Source, &status, &j.OverallConfidence,
			&j.FieldCount, &j.IssueCount, &j.ErrorMessage, &j.StartedAt, &finished); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		j.ID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parse job id: %w", err)
		}
		j.Status = constants.JobStatus(status)
		if finished.Valid {
			t := finished.Time
			j.FinishedAt = &t
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
