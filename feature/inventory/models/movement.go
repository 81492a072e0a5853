package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// MovementType names the transition a movement records.
type MovementType string

const (
	MovementAdded         MovementType = "added"
	MovementShipped       MovementType = "shipped"
	MovementTransferred   MovementType = "transferred"
	MovementGradeChanged  MovementType = "grade_changed"
	MovementStatusChanged MovementType = "status_changed"
	MovementRemoved       MovementType = "removed"
)

// MovementTypes lists every movement type in reporting order.
var MovementTypes = []MovementType{
	MovementAdded,
	MovementShipped,
	MovementTransferred,
	MovementGradeChanged,
	MovementStatusChanged,
	MovementRemoved,
}

// MovementSource tags who caused a movement.
type MovementSource string

const (
	SourceManual       MovementSource = "manual"
	SourceExternalSync MovementSource = "external_sync"
	SourceBulkImport   MovementSource = "bulk_import"
)

// Movement is one immutable ledger entry. Only the fields that changed carry
// from/to values.
type Movement struct {
	ID      string       `gorm:"column:id;primaryKey;size:26" json:"id"`
	ItemKey string       `gorm:"column:item_key;size:128;not null;index:idx_movements_item_created,priority:1" json:"item_key"`
	Type    MovementType `gorm:"column:type;size:32;not null;index" json:"type"`

	FromGrade      string     `gorm:"column:from_grade;size:16" json:"from_grade,omitempty"`
	ToGrade        string     `gorm:"column:to_grade;size:16" json:"to_grade,omitempty"`
	FromLockStatus string     `gorm:"column:from_lock_status;size:32" json:"from_lock_status,omitempty"`
	ToLockStatus   string     `gorm:"column:to_lock_status;size:32" json:"to_lock_status,omitempty"`
	FromStatus     ItemStatus `gorm:"column:from_status;size:16" json:"from_status,omitempty"`
	ToStatus       ItemStatus `gorm:"column:to_status;size:16" json:"to_status,omitempty"`
	FromLocation   string     `gorm:"column:from_location;size:128" json:"from_location,omitempty"`
	ToLocation     string     `gorm:"column:to_location;size:128" json:"to_location,omitempty"`

	// Location is where the item was once the transition applied.
	Location string `gorm:"column:location;size:128;index" json:"location,omitempty"`

	Source    MovementSource `gorm:"column:source;size:16;not null" json:"source"`
	Actor     string         `gorm:"column:actor;size:128" json:"actor,omitempty"`
	Note      string         `gorm:"column:note;type:text" json:"note,omitempty"`
	SyncRunID string         `gorm:"column:sync_run_id;size:36;index" json:"sync_run_id,omitempty"`
	Snapshot  datatypes.JSON `gorm:"column:snapshot" json:"snapshot" swaggertype:"object"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;index:idx_movements_item_created,priority:2" json:"created_at"`
}

// TableName overrides the table name.
func (Movement) TableName() string {
	return "movements"
}

// SnapshotOf encodes the attributes stored on a movement.
func SnapshotOf(item Item) datatypes.JSON {
	raw, _ := json.Marshal(item.Attributes())
	return datatypes.JSON(raw)
}
