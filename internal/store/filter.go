package store

import (
	"strings"

	"gorm.io/gorm"
)

// Filter holds the optional list predicates. All three are independent:
// a zero value matches everything.
type Filter struct {
	// Search matches case-insensitively as a substring of name,
	// description, or location.
	Search string
	// Type, when set, must equal resource_type exactly.
	Type string
	// Status, when set, must equal status exactly.
	Status string
}

// Apply composes the filter predicates onto tx and fixes the result
// ordering to name ascending.
func (f Filter) Apply(tx *gorm.DB) *gorm.DB {
	if search := strings.TrimSpace(f.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			like, like, like,
		)
	}
	if f.Type != "" {
		tx = tx.Where("resource_type = ?", f.Type)
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	return tx.Order("name ASC")
}

// IsZero reports whether no predicate is set.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Search) == "" && f.Type == "" && f.Status == ""
}
