package models

import (
	"time"

	"gorm.io/datatypes"
)

// DailySnapshot summarizes in-stock inventory and the day's movements.
// LocationID is empty for the all-locations snapshot.
type DailySnapshot struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SnapshotDate string `gorm:"column:snapshot_date;size:10;not null;uniqueIndex:idx_daily_snapshots_date_location,priority:1" json:"snapshot_date"`
	LocationID   string `gorm:"column:location_id;size:128;not null;default:'';uniqueIndex:idx_daily_snapshots_date_location,priority:2" json:"location_id"`

	TotalCount   int            `gorm:"column:total_count" json:"total_count"`
	ByGrade      datatypes.JSON `gorm:"column:by_grade" json:"by_grade" swaggertype:"object"`
	ByModel      datatypes.JSON `gorm:"column:by_model" json:"by_model" swaggertype:"object"`
	ByLockStatus datatypes.JSON `gorm:"column:by_lock_status" json:"by_lock_status" swaggertype:"object"`

	Added         int `gorm:"column:added" json:"added"`
	Shipped       int `gorm:"column:shipped" json:"shipped"`
	Transferred   int `gorm:"column:transferred" json:"transferred"`
	StatusChanged int `gorm:"column:status_changed" json:"status_changed"`
	Removed       int `gorm:"column:removed" json:"removed"`

	Items       datatypes.JSON `gorm:"column:items" json:"items" swaggertype:"array,object"`
	GeneratedAt time.Time      `gorm:"column:generated_at;not null" json:"generated_at"`
}

// TableName overrides the table name.
func (DailySnapshot) TableName() string {
	return "daily_snapshots"
}

// DateLayout is the format of SnapshotDate.
const DateLayout = "2006-01-02"
