package domain

import "time"

// RunRecord is a persisted case result
type RunRecord struct {
	Case         string
	Diagnostics  string
	Duration     time.Duration
	Expected     *string
	ID           string
	Output       string
	SourceDigest string
	SourcePath   string
	Stage        Stage
	StartedAt    time.Time
	Status       CaseStatus
	Suite        string
}

// RunFilter narrows a history listing
type RunFilter struct {
	Case   string
	Limit  int
	Status CaseStatus
	Suite  string
}
