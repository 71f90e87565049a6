// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Vaccine model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a vaccine is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/mribeiro/go-vacina-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateVaccine inserts a new vaccine row. The unique index on nome is the
// authoritative guard against duplicates; callers should map the resulting
// constraint error.
func CreateVaccine(ctx context.Context, db *gorm.DB, name, category string) (*domain.Vaccine, error) {
	v := &domain.Vaccine{Name: name, Category: category}
	if err := db.WithContext(ctx).Create(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

// ListVaccines returns all vaccines ordered by id. When category is non-empty
// the result is restricted to exact category matches; a filter that matches
// nothing yields an empty slice, not an error.
func ListVaccines(ctx context.Context, db *gorm.DB, category string) ([]domain.Vaccine, error) {
	var out []domain.Vaccine
	q := db.WithContext(ctx).Order("id ASC")
	if category != "" {
		q = q.Where("categoria = ?", category)
	}
	err := q.Find(&out).Error
	return out, err
}

// GetVaccine fetches a single vaccine by id, or ErrNotFound if missing.
func GetVaccine(ctx context.Context, db *gorm.DB, id uint) (*domain.Vaccine, error) {
	var v domain.Vaccine
	if err := db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// GetVaccineByName fetches a vaccine by its exact name, or ErrNotFound.
func GetVaccineByName(ctx context.Context, db *gorm.DB, name string) (*domain.Vaccine, error) {
	var v domain.Vaccine
	if err := db.WithContext(ctx).First(&v, "nome = ?", name).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// VaccineNameExists reports whether a vaccine with the exact name is already
// registered. Advisory only; the unique index remains the source of truth.
func VaccineNameExists(ctx context.Context, db *gorm.DB, name string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Vaccine{}).
		Where("nome = ?", name).
		Count(&n).Error
	return n > 0, err
}

// DeleteVaccine removes a vaccine row by id. If no rows are affected it
// returns ErrNotFound. Dependent immunization rows are removed by the caller
// within the same transaction (see services.VaccineService.Delete).
func DeleteVaccine(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Vaccine{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateVaccineCategory sets the category of the vaccine identified by id.
// Used by catalog seeding to correct categories in place.
func UpdateVaccineCategory(ctx context.Context, db *gorm.DB, id uint, category string) error {
	res := db.WithContext(ctx).
		Model(&domain.Vaccine{}).
		Where("id = ?", id).
		Update("categoria", category)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
