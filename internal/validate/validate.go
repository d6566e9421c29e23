// Package validate checks a proposed resource field set before it
// reaches the store. All rule violations are collected, not just the
// first, so a form can show every problem at once. The uniqueness check
// here is a user-experience nicety; the store's unique constraint is
// what actually guarantees it under concurrency.
package validate

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"resource-inventory-backend/internal/model"
	"resource-inventory-backend/internal/store"
)

// FieldError is a single validation failure tied to a form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Fields carries the raw submitted field set. Capacity stays a string
// so "absent", "not a number" and "out of range" remain distinguishable.
type Fields struct {
	Name             string `form:"name" json:"name" validate:"required,min=2,max=100"`
	ResourceType     string `form:"resource_type" json:"resource_type" validate:"required,oneof=room lab hall equipment"`
	Description      string `form:"description" json:"description" validate:"max=500"`
	Capacity         string `form:"capacity" json:"capacity"`
	Location         string `form:"location" json:"location" validate:"required,min=2,max=100"`
	Status           string `form:"status" json:"status" validate:"required,oneof=available maintenance booked"`
	Specifications   string `form:"specifications" json:"specifications" validate:"max=1000"`
	MaintenanceNotes string `form:"maintenance_notes" json:"maintenance_notes" validate:"max=500"`
}

var validate = validator.New()

// fieldNames maps struct fields to the form field names used in
// error reports.
var fieldNames = map[string]string{
	"Name":             "name",
	"ResourceType":     "resource_type",
	"Description":      "description",
	"Capacity":         "capacity",
	"Location":         "location",
	"Status":           "status",
	"Specifications":   "specifications",
	"MaintenanceNotes": "maintenance_notes",
}

// Normalize trims all text fields and applies the status default.
func (f *Fields) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.ResourceType = strings.TrimSpace(f.ResourceType)
	f.Description = strings.TrimSpace(f.Description)
	f.Capacity = strings.TrimSpace(f.Capacity)
	f.Location = strings.TrimSpace(f.Location)
	f.Status = strings.TrimSpace(f.Status)
	f.Specifications = strings.TrimSpace(f.Specifications)
	f.MaintenanceNotes = strings.TrimSpace(f.MaintenanceNotes)

	if f.Status == "" {
		f.Status = model.StatusAvailable
	}
}

// Resource converts validated fields into a model record. Call only
// after Check returned no errors.
func (f Fields) Resource() model.Resource {
	var capacity *int
	if f.Capacity != "" {
		if n, err := strconv.Atoi(f.Capacity); err == nil {
			capacity = &n
		}
	}
	return model.Resource{
		Name:             f.Name,
		ResourceType:     f.ResourceType,
		Description:      f.Description,
		Capacity:         capacity,
		Location:         f.Location,
		Status:           f.Status,
		Specifications:   f.Specifications,
		MaintenanceNotes: f.MaintenanceNotes,
	}
}

// Check normalizes f and returns every rule violation. editingID, when
// non-zero, excludes that record from the duplicate-name check. The
// store is only read, never written; a store fault is returned as a
// separate error so callers can surface it as a storage failure rather
// than a validation message.
func Check(ctx context.Context, st store.Store, f *Fields, editingID int64) ([]FieldError, error) {
	f.Normalize()

	var errs []FieldError
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			errs = append(errs, FieldError{
				Field:   fieldNames[fe.StructField()],
				Message: message(fe),
			})
		}
	}

	if f.Capacity != "" {
		n, err := strconv.Atoi(f.Capacity)
		switch {
		case err != nil:
			errs = append(errs, FieldError{"capacity", "Capacity must be a whole number."})
		case n < 0 || n > 1000:
			errs = append(errs, FieldError{"capacity", "Capacity must be between 0 and 1000."})
		}
	}

	if f.Name != "" && !hasError(errs, "name") {
		taken, err := st.NameTaken(ctx, f.Name, editingID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs = append(errs, FieldError{"name", "A resource with this name already exists."})
		}
	}

	return errs, nil
}

func hasError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

// message renders one rule violation in user-facing form.
func message(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		if fe.Tag() == "required" {
			return "Resource name is required."
		}
		return "Name must be between 2 and 100 characters."
	case "ResourceType":
		if fe.Tag() == "required" {
			return "Resource type is required."
		}
		return "Invalid resource type selected."
	case "Location":
		if fe.Tag() == "required" {
			return "Location is required."
		}
		return "Location must be between 2 and 100 characters."
	case "Description":
		return "Description cannot exceed 500 characters."
	case "Status":
		return "Invalid status selected."
	case "Specifications":
		return "Specifications cannot exceed 1000 characters."
	case "MaintenanceNotes":
		return "Maintenance notes cannot exceed 500 characters."
	}
	return "Invalid value for " + fieldNames[fe.StructField()] + "."
}
