package models

import (
	"time"

	"gorm.io/datatypes"
)

// RunStatus is the lifecycle state of a sync run.
type RunStatus string

const (
	RunInProgress RunStatus = "in_progress"
	RunCompleted  RunStatus = "completed"
	RunFailed     RunStatus = "failed"
)

// SyncRun records one synchronization attempt against a source.
type SyncRun struct {
	ID     string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Target string    `gorm:"column:target;size:128;not null;index:idx_sync_runs_target_status,priority:1" json:"target"`
	Status RunStatus `gorm:"column:status;size:16;not null;index:idx_sync_runs_target_status,priority:2;index" json:"status"`

	Processed int `gorm:"column:processed" json:"processed"`
	Added     int `gorm:"column:added" json:"added"`
	Updated   int `gorm:"column:updated" json:"updated"`
	Unchanged int `gorm:"column:unchanged" json:"unchanged"`
	Malformed int `gorm:"column:malformed" json:"malformed"`

	SourceRowCount int `gorm:"column:source_row_count" json:"source_row_count"`
	StoreCount     int `gorm:"column:store_count" json:"store_count"`

	ErrorMessage string         `gorm:"column:error_message;type:text" json:"error_message,omitempty"`
	ErrorDetails datatypes.JSON `gorm:"column:error_details" json:"error_details,omitempty" swaggertype:"object"`

	StartedAt   time.Time  `gorm:"column:started_at;not null;index" json:"started_at"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
}

// TableName overrides the table name.
func (SyncRun) TableName() string {
	return "sync_runs"
}

// Drift is the difference between rows in the source and items in the store.
func (r SyncRun) Drift() int {
	return r.SourceRowCount - r.StoreCount
}
