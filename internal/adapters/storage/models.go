package storage

import "time"

// RunModel is the GORM model for the runs table
type RunModel struct {
	Case         string    `gorm:"column:case_name;not null;index:idx_suite_case,priority:2"`
	CreatedAt    time.Time
	Diagnostics  string    `gorm:"not null;default:''"`
	DurationNs   int64     `gorm:"not null;default:0"`
	Expected     *string   `gorm:"default:null"`
	ID           string    `gorm:"primaryKey"`
	Output       string    `gorm:"not null;default:''"`
	SourceDigest string    `gorm:"not null;default:''"`
	SourcePath   string    `gorm:"not null"`
	Stage        string    `gorm:"not null;default:''"`
	StartedAt    time.Time `gorm:"not null;index:idx_started_at"`
	Status       string    `gorm:"not null;index:idx_status;check:status IN ('pass','fail','error')"`
	Suite        string    `gorm:"not null;default:'';index:idx_suite_case,priority:1"`
}

// TableName specifies the table name for GORM
func (RunModel) TableName() string { return "runs" }
