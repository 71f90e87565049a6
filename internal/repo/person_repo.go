// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Person model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/mribeiro/go-vacina-backend/internal/domain"
)

// CreatePerson inserts a new person row. The unique index on
// numero_identificacao is the authoritative duplicate guard.
func CreatePerson(ctx context.Context, db *gorm.DB, name, externalID string) (*domain.Person, error) {
	p := &domain.Person{Name: name, ExternalID: externalID}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// ListPersons returns all registered persons ordered by id.
func ListPersons(ctx context.Context, db *gorm.DB) ([]domain.Person, error) {
	var out []domain.Person
	err := db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

// GetPerson fetches a single person by id, or ErrNotFound if missing.
func GetPerson(ctx context.Context, db *gorm.DB, id uint) (*domain.Person, error) {
	var p domain.Person
	if err := db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// PersonExternalIDExists reports whether some person already carries the
// given identification number. Advisory; the unique index is authoritative.
func PersonExternalIDExists(ctx context.Context, db *gorm.DB, externalID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Person{}).
		Where("numero_identificacao = ?", externalID).
		Count(&n).Error
	return n > 0, err
}

// DeletePerson removes a person row by id, returning ErrNotFound when no row
// matched. Dependent immunization rows are removed by the caller within the
// same transaction.
func DeletePerson(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Person{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
