// Package services – ImmunizationService
//
// This file implements the ImmunizationService, the most intricate part of
// the application. It governs how doses are recorded (referential checks,
// closed dose-label set, wire-format timestamp parsing, triple uniqueness)
// and builds the per-person vaccination card: the grouped view of every dose
// a person has received, by vaccine.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mribeiro/go-vacina-backend/internal/domain"
	"github.com/mribeiro/go-vacina-backend/internal/repo"
)

// CardDose is one administered dose inside a vaccination-card group.
type CardDose struct {
	ID        uint
	DoseLabel string
	AppliedAt time.Time
}

// CardVaccine groups all doses of one vaccine administered to a person.
// Doses are ordered by application time ascending.
type CardVaccine struct {
	VaccineID   uint
	VaccineName string
	Category    string
	Doses       []CardDose
}

// Card is a person's vaccination card: the person's own summary plus one
// group per vaccine actually administered. Vaccines the person never received
// do not appear. Group order follows the first (earliest) dose encountered
// per vaccine.
type Card struct {
	Person   domain.Person
	Vaccines []CardVaccine
}

// ImmunizationService implements the use-cases around the dose ledger.
type ImmunizationService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// Now returns the insertion timestamp for records without an explicit
	// data_aplicacao. Defaults to time.Now; tests pin it.
	Now func() time.Time
}

// now returns the current time, truncated to whole seconds to match the
// exact-second wire format.
func (s *ImmunizationService) now() time.Time {
	if s.Now != nil {
		return s.Now().Truncate(time.Second)
	}
	return time.Now().Truncate(time.Second)
}

// Record persists one dose administration.
//
// Validation, in order:
//  1. personID, vaccineID, and doseLabel must all be present.
//  2. doseLabel must belong to the closed set in domain.DoseLabels.
//  3. appliedAt, when non-empty, must parse as domain.AppliedAtLayout;
//     when empty it defaults to the current time at insertion.
//  4. Both referenced entities must exist (checked inside the transaction).
//  5. The (person, vaccine, doseLabel) triple must not already be recorded.
//
// The existence checks and the insert run atomically; the composite unique
// index remains the authoritative duplicate guard, so a losing race still
// surfaces as ErrDuplicateImmunization.
func (s *ImmunizationService) Record(ctx context.Context, personID, vaccineID uint, doseLabel, appliedAt string) (*domain.Immunization, error) {
	doseLabel = strings.TrimSpace(doseLabel)
	if personID == 0 || vaccineID == 0 || doseLabel == "" {
		return nil, ErrDoseFieldsRequired
	}
	if !domain.ValidDoseLabel(doseLabel) {
		return nil, ErrInvalidDoseLabel
	}

	when := s.now()
	if appliedAt != "" {
		parsed, err := time.Parse(domain.AppliedAtLayout, appliedAt)
		if err != nil {
			return nil, ErrInvalidAppliedAt
		}
		when = parsed
	}

	var created *domain.Immunization
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetPerson(ctx, tx, personID); err != nil {
			if isNotFound(err) {
				return ErrPersonNotFound
			}
			return err
		}
		if _, err := repo.GetVaccine(ctx, tx, vaccineID); err != nil {
			if isNotFound(err) {
				return ErrVaccineNotFound
			}
			return err
		}

		exists, err := repo.ImmunizationExists(ctx, tx, personID, vaccineID, doseLabel)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateImmunization
		}

		created, err = repo.CreateImmunization(ctx, tx, personID, vaccineID, doseLabel, when)
		if err != nil {
			if isDuplicate(err) {
				return ErrDuplicateImmunization
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

// Delete removes a single dose record by id, or ErrImmunizationNotFound.
func (s *ImmunizationService) Delete(ctx context.Context, id uint) error {
	err := repo.DeleteImmunization(ctx, s.DB, id)
	if err != nil && isNotFound(err) {
		return ErrImmunizationNotFound
	}
	return err
}

// BuildCard assembles the vaccination card for a person, or
// ErrPersonNotFound when the person does not exist. A person with no
// recorded doses yields a card with an empty (non-nil) vaccine list.
//
// The repo returns the flat join ordered by data_aplicacao ascending; the
// single grouping pass here therefore keeps doses chronological inside each
// group, while groups appear in first-encounter order of the scan.
func (s *ImmunizationService) BuildCard(ctx context.Context, personID uint) (*Card, error) {
	person, err := repo.GetPerson(ctx, s.DB, personID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}

	rows, err := repo.ListCardRows(ctx, s.DB, personID)
	if err != nil {
		return nil, err
	}

	card := &Card{Person: *person, Vaccines: []CardVaccine{}}
	index := make(map[uint]int) // vaccine id -> position in card.Vaccines
	for _, r := range rows {
		i, ok := index[r.VaccineID]
		if !ok {
			i = len(card.Vaccines)
			index[r.VaccineID] = i
			card.Vaccines = append(card.Vaccines, CardVaccine{
				VaccineID:   r.VaccineID,
				VaccineName: r.VaccineName,
				Category:    r.Category,
			})
		}
		card.Vaccines[i].Doses = append(card.Vaccines[i].Doses, CardDose{
			ID:        r.ID,
			DoseLabel: r.DoseLabel,
			AppliedAt: r.AppliedAt,
		})
	}
	return card, nil
}
