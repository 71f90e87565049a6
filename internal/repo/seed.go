// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file seeds the vaccine catalog with the reference list
// from the standard childhood vaccination card.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// catalogEntry pairs a vaccine name with its expected category.
type catalogEntry struct {
	Name     string
	Category string
}

// defaultCatalog mirrors the columns of the printed vaccination card.
var defaultCatalog = []catalogEntry{
	{"BCG", "Bacteriana"},
	{"HEPATITE B", "Viral"},
	{"ANTI-POLIO (SABIN)", "Viral"},
	{"TETRA VALENTE", "Bacteriana"},
	{"TRIPLICE BACTERIANA (DPT)", "Bacteriana"},
	{"HAEMOPHILUS INFLUENZAE", "Bacteriana"},
	{"TRIPLICE ACELULAR", "Bacteriana"},
	{"PNEUMO 10 VALENTE", "Bacteriana"},
	{"MENINGO C", "Bacteriana"},
	{"ROTAVIRUS", "Viral"},
}

// SeedVaccineCatalog inserts the reference vaccines when absent and corrects
// the category of existing entries that drifted. Idempotent; runs inside a
// single transaction on every startup.
func SeedVaccineCatalog(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range defaultCatalog {
			existing, err := GetVaccineByName(ctx, tx, e.Name)
			switch {
			case err == nil:
				if existing.Category != e.Category {
					if err := UpdateVaccineCategory(ctx, tx, existing.ID, e.Category); err != nil {
						return err
					}
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if _, err := CreateVaccine(ctx, tx, e.Name, e.Category); err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}
