package repo

import (
	"context"
	"testing"

	"github.com/mribeiro/go-vacina-backend/internal/domain"
)

func TestSeedVaccineCatalog_PopulatesEmptyDatabase(t *testing.T) {
	db := newRepoDB(t, &domain.Vaccine{})
	ctx := context.Background()

	if err := SeedVaccineCatalog(ctx, db); err != nil {
		t.Fatalf("SeedVaccineCatalog: %v", err)
	}

	all, err := ListVaccines(ctx, db, "")
	if err != nil {
		t.Fatalf("ListVaccines: %v", err)
	}
	if len(all) != len(defaultCatalog) {
		t.Fatalf("expected %d seeded vaccines, got %d", len(defaultCatalog), len(all))
	}
	bcg, err := GetVaccineByName(ctx, db, "BCG")
	if err != nil || bcg.Category != "Bacteriana" {
		t.Fatalf("BCG not seeded correctly: got=%+v err=%v", bcg, err)
	}
}

func TestSeedVaccineCatalog_Idempotent(t *testing.T) {
	db := newRepoDB(t, &domain.Vaccine{})
	ctx := context.Background()

	if err := SeedVaccineCatalog(ctx, db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := SeedVaccineCatalog(ctx, db); err != nil {
		t.Fatalf("second run: %v", err)
	}

	all, err := ListVaccines(ctx, db, "")
	if err != nil {
		t.Fatalf("ListVaccines: %v", err)
	}
	if len(all) != len(defaultCatalog) {
		t.Fatalf("re-run duplicated entries: got %d", len(all))
	}
}

func TestSeedVaccineCatalog_CorrectsDriftedCategory(t *testing.T) {
	db := newRepoDB(t, &domain.Vaccine{})
	ctx := context.Background()

	// Pre-existing entry with the wrong category.
	v, err := CreateVaccine(ctx, db, "ROTAVIRUS", "Geral")
	if err != nil {
		t.Fatalf("pre-seed: %v", err)
	}

	if err := SeedVaccineCatalog(ctx, db); err != nil {
		t.Fatalf("SeedVaccineCatalog: %v", err)
	}

	got, err := GetVaccine(ctx, db, v.ID)
	if err != nil {
		t.Fatalf("GetVaccine: %v", err)
	}
	if got.Category != "Viral" {
		t.Fatalf("category not corrected: %+v", got)
	}
}

func TestSeedVaccineCatalog_KeepsUserAddedVaccines(t *testing.T) {
	db := newRepoDB(t, &domain.Vaccine{})
	ctx := context.Background()

	if _, err := CreateVaccine(ctx, db, "FEBRE AMARELA", "Viral"); err != nil {
		t.Fatalf("custom vaccine: %v", err)
	}
	if err := SeedVaccineCatalog(ctx, db); err != nil {
		t.Fatalf("SeedVaccineCatalog: %v", err)
	}

	all, err := ListVaccines(ctx, db, "")
	if err != nil {
		t.Fatalf("ListVaccines: %v", err)
	}
	if len(all) != len(defaultCatalog)+1 {
		t.Fatalf("expected catalog plus custom entry, got %d", len(all))
	}
}
