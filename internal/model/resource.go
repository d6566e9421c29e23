package model

import "time"

// Recognized resource types.
const (
	TypeRoom      = "room"
	TypeLab       = "lab"
	TypeHall      = "hall"
	TypeEquipment = "equipment"
)

// Recognized resource statuses.
const (
	StatusAvailable   = "available"
	StatusMaintenance = "maintenance"
	StatusBooked      = "booked"
)

// Types lists every valid resource_type value, in form-display order.
var Types = []string{TypeRoom, TypeLab, TypeHall, TypeEquipment}

// Statuses lists every valid status value, in form-display order.
var Statuses = []string{StatusAvailable, StatusMaintenance, StatusBooked}

// ValidType reports whether t is a member of the resource_type enumeration.
func ValidType(t string) bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Resource represents a single institutional asset: a room, lab, hall,
// or piece of equipment.
type Resource struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	ResourceType     string    `gorm:"size:20;not null" json:"resource_type"`
	Description      string    `gorm:"size:500" json:"description"`
	Capacity         *int      `json:"capacity"`
	Location         string    `gorm:"size:100;not null" json:"location"`
	Status           string    `gorm:"size:20;not null;default:available" json:"status"`
	Specifications   string    `gorm:"size:1000" json:"specifications,omitempty"`
	MaintenanceNotes string    `gorm:"size:500" json:"maintenance_notes,omitempty"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

// TableName keeps the table name aligned with the historical schema.
func (Resource) TableName() string { return "resources" }
