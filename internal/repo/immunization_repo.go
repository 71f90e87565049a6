// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// Immunization model, including the flat join that feeds the vaccination
// card aggregation.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mribeiro/go-vacina-backend/internal/domain"
)

// CardRow is one row of the card join: a dose record enriched with its
// vaccine's name and category. Rows are produced ordered by application time
// ascending (id as tiebreaker) so the grouping pass upstream preserves
// chronological order inside each vaccine group.
type CardRow struct {
	ID          uint      `gorm:"column:id"`
	VaccineID   uint      `gorm:"column:vacina_id"`
	VaccineName string    `gorm:"column:nome_vacina"`
	Category    string    `gorm:"column:categoria"`
	DoseLabel   string    `gorm:"column:dose_aplicada"`
	AppliedAt   time.Time `gorm:"column:data_aplicacao"`
}

// CreateImmunization inserts a new dose record. The composite unique index on
// (pessoa_id, vacina_id, dose_aplicada) is the authoritative duplicate guard.
func CreateImmunization(ctx context.Context, db *gorm.DB, personID, vaccineID uint, doseLabel string, appliedAt time.Time) (*domain.Immunization, error) {
	rec := &domain.Immunization{
		PersonID:  personID,
		VaccineID: vaccineID,
		DoseLabel: doseLabel,
		AppliedAt: appliedAt,
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// GetImmunization fetches a dose record by id, or ErrNotFound.
func GetImmunization(ctx context.Context, db *gorm.DB, id uint) (*domain.Immunization, error) {
	var rec domain.Immunization
	if err := db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// ImmunizationExists reports whether the (person, vaccine, dose label) triple
// is already recorded. Advisory; the unique index is authoritative.
func ImmunizationExists(ctx context.Context, db *gorm.DB, personID, vaccineID uint, doseLabel string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Immunization{}).
		Where("pessoa_id = ? AND vacina_id = ? AND dose_aplicada = ?", personID, vaccineID, doseLabel).
		Count(&n).Error
	return n > 0, err
}

// DeleteImmunization removes a dose record by id, returning ErrNotFound when
// no row matched.
func DeleteImmunization(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Immunization{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteImmunizationsByPerson removes every dose record belonging to the
// person. Zero affected rows is not an error (the person may simply have no
// recorded doses).
func DeleteImmunizationsByPerson(ctx context.Context, db *gorm.DB, personID uint) error {
	return db.WithContext(ctx).
		Delete(&domain.Immunization{}, "pessoa_id = ?", personID).Error
}

// DeleteImmunizationsByVaccine removes every dose record referencing the
// vaccine.
func DeleteImmunizationsByVaccine(ctx context.Context, db *gorm.DB, vaccineID uint) error {
	return db.WithContext(ctx).
		Delete(&domain.Immunization{}, "vacina_id = ?", vaccineID).Error
}

// ListCardRows returns all dose records of a person joined with their
// vaccine's name and category, ordered by data_aplicacao ascending (earliest
// first) with id as a stable tiebreaker.
func ListCardRows(ctx context.Context, db *gorm.DB, personID uint) ([]CardRow, error) {
	var rows []CardRow
	err := db.WithContext(ctx).
		Table("vacinacoes").
		Select("vacinacoes.id AS id, vacinas.id AS vacina_id, vacinas.nome AS nome_vacina, vacinas.categoria AS categoria, vacinacoes.dose_aplicada AS dose_aplicada, vacinacoes.data_aplicacao AS data_aplicacao").
		Joins("JOIN vacinas ON vacinas.id = vacinacoes.vacina_id").
		Where("vacinacoes.pessoa_id = ?", personID).
		Order("vacinacoes.data_aplicacao ASC, vacinacoes.id ASC").
		Scan(&rows).Error
	return rows, err
}
