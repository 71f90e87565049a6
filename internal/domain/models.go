// Package domain defines the persistence models for vaccines, persons, and
// immunization records. These types are mapped with GORM and form the core
// data layer of the vaccination-card application.
//
// Column names follow the original Brazilian-Portuguese schema (vacinas,
// pessoas, vacinacoes) so the database remains compatible with existing
// deployments; the public JSON contract is produced by explicit mapping
// functions in the HTTP layer, never by reflecting these structs.
package domain

import "time"

// Vaccine represents one known vaccine type in the catalog.
//
// Fields:
//   - ID: auto-increment integer primary key.
//   - Name: vaccine name; unique across the catalog (case-sensitive).
//   - Category: free-form category label, defaults to "Geral".
type Vaccine struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:nome;type:varchar(100);not null;uniqueIndex:ux_vacinas_nome"`
	Category string `gorm:"column:categoria;type:varchar(50);not null;default:'Geral'"`
}

// TableName returns the database table name for Vaccine.
func (Vaccine) TableName() string { return "vacinas" }

// Person represents an individual tracked by the registry. The external
// identification number (CPF, RG, passport, ...) is unique.
type Person struct {
	ID         uint   `gorm:"column:id;primaryKey"`
	Name       string `gorm:"column:nome;type:varchar(100);not null"`
	ExternalID string `gorm:"column:numero_identificacao;type:varchar(50);not null;uniqueIndex:ux_pessoas_numero_identificacao"`
}

// TableName returns the database table name for Person.
func (Person) TableName() string { return "pessoas" }

// Immunization is a single administration event: one dose of one vaccine
// given to one person at a point in time.
//
// The (person, vaccine, dose label) triple is unique: a person cannot have
// the same labeled dose of the same vaccine recorded twice. The composite
// unique index is the source of truth for that rule; service-level checks
// only exist to produce friendlier error messages.
//
// Rows are cascade-deleted when their person or vaccine is removed.
type Immunization struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	PersonID  uint      `gorm:"column:pessoa_id;not null;index;uniqueIndex:ux_vacinacoes_pessoa_vacina_dose,priority:1"`
	VaccineID uint      `gorm:"column:vacina_id;not null;index;uniqueIndex:ux_vacinacoes_pessoa_vacina_dose,priority:2"`
	DoseLabel string    `gorm:"column:dose_aplicada;type:varchar(50);not null;uniqueIndex:ux_vacinacoes_pessoa_vacina_dose,priority:3"`
	AppliedAt time.Time `gorm:"column:data_aplicacao;not null"`

	// FK associations; dose records do not outlive their person or vaccine.
	Person  Person  `gorm:"foreignKey:PersonID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Vaccine Vaccine `gorm:"foreignKey:VaccineID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Immunization.
func (Immunization) TableName() string { return "vacinacoes" }

// User is an API credential. Users gate access to mutating endpoints but own
// no domain data; there is deliberately no relationship to the other tables.
type User struct {
	ID           uint   `gorm:"column:id;primaryKey"`
	Username     string `gorm:"column:username;type:varchar(80);not null;uniqueIndex:ux_usuarios_username"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "usuarios" }
