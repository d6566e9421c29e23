package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"resource-inventory-backend/internal/model"
)

// Sentinel errors surfaced by the store. Handlers translate these into
// navigation or failure responses; they never reach the client raw.
var (
	// ErrNotFound is returned when the requested resource id does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict is returned when a write violates the unique name
	// constraint. The constraint lives in the database so concurrent
	// creates that both pass validation cannot both win.
	ErrConflict = errors.New("resource name already exists")
)

// StatusCounts aggregates resources by status for the dashboard.
type StatusCounts struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	Maintenance int64 `json:"maintenance"`
	Booked      int64 `json:"booked"`
}

// Store defines the persistence operations for resources.
type Store interface {
	Get(ctx context.Context, id int64) (*model.Resource, error)
	List(ctx context.Context, f Filter) ([]model.Resource, error)
	Create(ctx context.Context, r *model.Resource) error
	Update(ctx context.Context, id int64, r *model.Resource) (*model.Resource, error)
	Delete(ctx context.Context, id int64) error
	DistinctValues(ctx context.Context, column string) ([]string, error)
	FilterOptions(ctx context.Context) (types, statuses []string, err error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
	Recent(ctx context.Context, n int) ([]model.Resource, error)
	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Get fetches a single resource by id.
func (s *gormStore) Get(ctx context.Context, id int64) (*model.Resource, error) {
	var r model.Resource
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch resource %d: %w", id, err)
	}
	return &r, nil
}

// List returns all resources matching f, ordered by name ascending.
func (s *gormStore) List(ctx context.Context, f Filter) ([]model.Resource, error) {
	var resources []model.Resource
	tx := f.Apply(s.db.WithContext(ctx).Model(&model.Resource{}))
	if err := tx.Find(&resources).Error; err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, nil
}

// Create persists a new resource. Timestamps are stamped by GORM.
func (s *gormStore) Create(ctx context.Context, r *model.Resource) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

// Update replaces the editable fields of the resource with id and bumps
// updated_at. The read and write run in one transaction so a failed
// write leaves the prior record visible.
func (s *gormStore) Update(ctx context.Context, id int64, r *model.Resource) (*model.Resource, error) {
	var updated model.Resource
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Resource
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to fetch resource %d: %w", id, err)
		}

		existing.Name = r.Name
		existing.ResourceType = r.ResourceType
		existing.Description = r.Description
		existing.Capacity = r.Capacity
		existing.Location = r.Location
		existing.Status = r.Status
		existing.Specifications = r.Specifications
		existing.MaintenanceNotes = r.MaintenanceNotes

		if err := tx.Save(&existing).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("failed to update resource %d: %w", id, err)
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the resource with id permanently.
func (s *gormStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Resource{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete resource %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// distinctColumns is the allowlist for DistinctValues. Column names are
// interpolated into SQL, so only these two are accepted.
var distinctColumns = map[string]bool{
	"resource_type": true,
	"status":        true,
}

// DistinctValues returns the distinct non-empty values of column that
// are actually present, sorted ascending.
func (s *gormStore) DistinctValues(ctx context.Context, column string) ([]string, error) {
	if !distinctColumns[column] {
		return nil, fmt.Errorf("distinct values not supported for column %q", column)
	}
	var values []string
	err := s.db.WithContext(ctx).
		Model(&model.Resource{}).
		Distinct().
		Order(column + " ASC").
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distinct %s values: %w", column, err)
	}
	return values, nil
}

// FilterOptions returns the type and status values present in the store,
// used to populate the list filter dropdowns. An empty store yields
// empty slices, not an error.
func (s *gormStore) FilterOptions(ctx context.Context) ([]string, []string, error) {
	types, err := s.DistinctValues(ctx, "resource_type")
	if err != nil {
		return nil, nil, err
	}
	statuses, err := s.DistinctValues(ctx, "status")
	if err != nil {
		return nil, nil, err
	}
	return types, statuses, nil
}

// CountByStatus aggregates resource counts per status in a single query.
func (s *gormStore) CountByStatus(ctx context.Context) (StatusCounts, error) {
	type aggRow struct {
		Status string
		N      int64
	}
	var rows []aggRow
	err := s.db.WithContext(ctx).
		Model(&model.Resource{}).
		Select("status, COUNT(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return StatusCounts{}, fmt.Errorf("failed to count resources by status: %w", err)
	}

	var counts StatusCounts
	for _, row := range rows {
		counts.Total += row.N
		switch row.Status {
		case model.StatusAvailable:
			counts.Available = row.N
		case model.StatusMaintenance:
			counts.Maintenance = row.N
		case model.StatusBooked:
			counts.Booked = row.N
		}
	}
	return counts, nil
}

// Recent returns the n most recently created resources, newest first.
func (s *gormStore) Recent(ctx context.Context, n int) ([]model.Resource, error) {
	var resources []model.Resource
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(n).
		Find(&resources).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent resources: %w", err)
	}
	return resources, nil
}

// NameTaken reports whether another resource already uses name. When
// excludeID is non-zero that record is ignored, so an edit does not
// collide with itself.
func (s *gormStore) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	tx := s.db.WithContext(ctx).Model(&model.Resource{}).Where("name = ?", name)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	return count > 0, nil
}

// isUniqueViolation detects a unique constraint failure across the
// supported drivers. GORM's error translation covers postgres; the
// string checks cover the sqlite driver, which predates translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
