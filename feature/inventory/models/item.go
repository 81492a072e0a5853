package models

import "time"

// ItemStatus is the lifecycle state of a physical asset.
type ItemStatus string

const (
	StatusInStock     ItemStatus = "in_stock"
	StatusShipped     ItemStatus = "shipped"
	StatusTransferred ItemStatus = "transferred"
	StatusRemoved     ItemStatus = "removed"
)

// Item is the current state of one asset, keyed by its serial.
type Item struct {
	Key        string     `gorm:"column:item_key;primaryKey;size:128" json:"key"`
	Model      string     `gorm:"column:model;size:255" json:"model"`
	Capacity   string     `gorm:"column:capacity;size:64" json:"capacity"`
	Color      string     `gorm:"column:color;size:64" json:"color"`
	SKU        string     `gorm:"column:sku;size:128" json:"sku"`
	Grade      string     `gorm:"column:grade;size:16" json:"grade"`
	LockStatus string     `gorm:"column:lock_status;size:32" json:"lock_status"`
	Location   string     `gorm:"column:location;size:128;index" json:"location"`
	Status     ItemStatus `gorm:"column:status;size:16;index;not null;default:in_stock" json:"status"`

	FirstSeenAt time.Time `gorm:"column:first_seen_at;not null" json:"first_seen_at"`
	LastSeenAt  time.Time `gorm:"column:last_seen_at;not null" json:"last_seen_at"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "items"
}

// Attributes is the point-in-time view of an item stored on each movement.
type Attributes struct {
	Key        string     `json:"key"`
	Model      string     `json:"model,omitempty"`
	Capacity   string     `json:"capacity,omitempty"`
	Color      string     `json:"color,omitempty"`
	SKU        string     `json:"sku,omitempty"`
	Grade      string     `json:"grade,omitempty"`
	LockStatus string     `json:"lock_status,omitempty"`
	Location   string     `json:"location,omitempty"`
	Status     ItemStatus `json:"status"`
}

// Attributes returns the snapshot of the item's descriptive and state fields.
func (i Item) Attributes() Attributes {
	return Attributes{
		Key:        i.Key,
		Model:      i.Model,
		Capacity:   i.Capacity,
		Color:      i.Color,
		SKU:        i.SKU,
		Grade:      i.Grade,
		LockStatus: i.LockStatus,
		Location:   i.Location,
		Status:     i.Status,
	}
}

// Seen advances LastSeenAt, never moving it backwards.
func (i *Item) Seen(at time.Time) {
	if at.After(i.LastSeenAt) {
		i.LastSeenAt = at
	}
}
