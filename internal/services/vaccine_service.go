// Package services – VaccineService
//
// This file implements the VaccineService, which manages the vaccine catalog:
// adding vaccines with a defaulted category, listing with an optional exact
// category filter, fetching by id, and deletion with cascade over dependent
// dose records. Service-level errors (e.g. ErrVaccineExists) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mribeiro/go-vacina-backend/internal/domain"
	"github.com/mribeiro/go-vacina-backend/internal/repo"
)

// DefaultCategory is assigned to vaccines created without an explicit category.
const DefaultCategory = "Geral"

// VaccineService provides catalog-level operations over vaccines.
type VaccineService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Create adds a vaccine to the catalog. The name is required and must be
// unique (case-sensitive exact match); an empty category falls back to
// DefaultCategory.
//
// The uniqueness pre-check and the insert run in one transaction; the unique
// index on nome remains the authoritative guard, so a losing race still
// surfaces as ErrVaccineExists rather than a half-applied write.
func (s *VaccineService) Create(ctx context.Context, name, category string) (*domain.Vaccine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrVaccineNameRequired
	}
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}

	var created *domain.Vaccine
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := repo.VaccineNameExists(ctx, tx, name)
		if err != nil {
			return err
		}
		if exists {
			return ErrVaccineExists
		}

		created, err = repo.CreateVaccine(ctx, tx, name, category)
		if err != nil {
			if isDuplicate(err) {
				return ErrVaccineExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List returns the catalog, optionally restricted to an exact category match.
// A filter matching nothing yields an empty list, not an error.
func (s *VaccineService) List(ctx context.Context, category string) ([]domain.Vaccine, error) {
	return repo.ListVaccines(ctx, s.DB, strings.TrimSpace(category))
}

// Get fetches a single vaccine by id, or ErrVaccineNotFound.
func (s *VaccineService) Get(ctx context.Context, id uint) (*domain.Vaccine, error) {
	v, err := repo.GetVaccine(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrVaccineNotFound
		}
		return nil, err
	}
	return v, nil
}

// Delete removes a vaccine and every dose record referencing it, atomically.
// Returns ErrVaccineNotFound when the id does not resolve.
func (s *VaccineService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetVaccine(ctx, tx, id); err != nil {
			if isNotFound(err) {
				return ErrVaccineNotFound
			}
			return err
		}
		if err := repo.DeleteImmunizationsByVaccine(ctx, tx, id); err != nil {
			return err
		}
		return repo.DeleteVaccine(ctx, tx, id)
	})
}
