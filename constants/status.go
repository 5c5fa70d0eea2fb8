package constants

// ResultStatus is the terminal status of one extraction.
type ResultStatus string

const (
	StatusComplete ResultStatus = "complete" // all mandatory fields present, no error-severity issues
	StatusPartial  ResultStatus = "partial"  // extraction finished but the record is incomplete or suspect
	StatusFailed   ResultStatus = "failed"   // input could not be decoded; no fields extracted
)

// JobStatus is the canonical status for rows in extract_jobs.
type JobStatus string

// Stable values (store these exact strings in the DB).
const (
	JobStatusRunning JobStatus = "RUNNING" // in progress
	JobStatusOK      JobStatus = "OK"      // extraction returned a result
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure
)
