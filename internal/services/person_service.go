// Package services – PersonService
//
// This file implements the PersonService, which manages the person registry:
// registering persons with a unique identification number, listing, fetching
// by id, and deletion with cascade over the person's dose records.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mribeiro/go-vacina-backend/internal/domain"
	"github.com/mribeiro/go-vacina-backend/internal/repo"
)

// PersonService provides registry-level operations over persons.
type PersonService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Create registers a person. Both the name and the identification number are
// required; the identification number must be unique.
func (s *PersonService) Create(ctx context.Context, name, externalID string) (*domain.Person, error) {
	name = strings.TrimSpace(name)
	externalID = strings.TrimSpace(externalID)
	if name == "" || externalID == "" {
		return nil, ErrPersonFieldsRequired
	}

	var created *domain.Person
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := repo.PersonExternalIDExists(ctx, tx, externalID)
		if err != nil {
			return err
		}
		if exists {
			return ErrPersonExists
		}

		created, err = repo.CreatePerson(ctx, tx, name, externalID)
		if err != nil {
			if isDuplicate(err) {
				return ErrPersonExists
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

// List returns all registered persons.
func (s *PersonService) List(ctx context.Context) ([]domain.Person, error) {
	return repo.ListPersons(ctx, s.DB)
}

// Get fetches a single person by id, or ErrPersonNotFound.
func (s *PersonService) Get(ctx context.Context, id uint) (*domain.Person, error) {
	p, err := repo.GetPerson(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes a person and their entire vaccination history, atomically.
// Returns ErrPersonNotFound when the id does not resolve.
func (s *PersonService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetPerson(ctx, tx, id); err != nil {
			if isNotFound(err) {
				return ErrPersonNotFound
			}
			return err
		}
		if err := repo.DeleteImmunizationsByPerson(ctx, tx, id); err != nil {
			return err
		}
		return repo.DeletePerson(ctx, tx, id)
	})
}
