package storage

import (
	"time"

	"sushitest/internal/domain"
)

// runModelToDomain converts a RunModel (GORM) to domain.RunRecord
func runModelToDomain(m RunModel) domain.RunRecord {
	return domain.RunRecord{
		Case:         m.Case,
		Diagnostics:  m.Diagnostics,
		Duration:     time.Duration(m.DurationNs),
		Expected:     m.Expected,
		ID:           m.ID,
		Output:       m.Output,
		SourceDigest: m.SourceDigest,
		SourcePath:   m.SourcePath,
		Stage:        domain.Stage(m.Stage),
		StartedAt:    m.StartedAt,
		Status:       domain.CaseStatus(m.Status),
		Suite:        m.Suite,
	}
}

// domainToRunModel converts a domain.RunRecord to RunModel (GORM)
func domainToRunModel(r domain.RunRecord) RunModel {
	return RunModel{
		Case:         r.Case,
		Diagnostics:  r.Diagnostics,
		DurationNs:   int64(r.Duration),
		Expected:     r.Expected,
		ID:           r.ID,
		Output:       r.Output,
		SourceDigest: r.SourceDigest,
		SourcePath:   r.SourcePath,
		Stage:        string(r.Stage),
		StartedAt:    r.StartedAt.UTC(),
		Status:       string(r.Status),
		Suite:        r.Suite,
	}
}
