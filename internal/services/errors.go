// Package services defines the business logic for the vaccine catalog, the
// person registry, the dose ledger, and API credentials. This file
// centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages and HTTP status codes is performed once at the
// handler layer.
package services

import "errors"

// Vaccine catalog errors.
var (
	// ErrVaccineNameRequired is returned when a vaccine is created without a name.
	ErrVaccineNameRequired = errors.New("vaccine name is required")

	// ErrVaccineExists indicates the vaccine name is already in the catalog.
	ErrVaccineExists = errors.New("vaccine already exists")

	// ErrVaccineNotFound indicates the referenced vaccine does not exist.
	ErrVaccineNotFound = errors.New("vaccine not found")
)

// Person registry errors.
var (
	// ErrPersonFieldsRequired is returned when name or identification number
	// is missing on registration.
	ErrPersonFieldsRequired = errors.New("person name and identification number are required")

	// ErrPersonExists indicates the identification number is already registered.
	ErrPersonExists = errors.New("person already exists")

	// ErrPersonNotFound indicates the referenced person does not exist.
	ErrPersonNotFound = errors.New("person not found")
)

// Dose ledger errors.
var (
	// ErrDoseFieldsRequired is returned when pessoa_id, vacina_id, or
	// dose_aplicada is absent from a record request.
	ErrDoseFieldsRequired = errors.New("pessoa_id, vacina_id and dose_aplicada are required")

	// ErrInvalidDoseLabel is returned when dose_aplicada is not a member of
	// the closed label set.
	ErrInvalidDoseLabel = errors.New("dose label is not recognized")

	// ErrInvalidAppliedAt is returned when data_aplicacao does not parse in
	// the YYYY-MM-DDTHH:MM:SS wire format.
	ErrInvalidAppliedAt = errors.New("application date is malformed")

	// ErrDuplicateImmunization indicates the (person, vaccine, dose) triple
	// is already recorded.
	ErrDuplicateImmunization = errors.New("dose already recorded for this person and vaccine")

	// ErrImmunizationNotFound indicates the referenced dose record does not exist.
	ErrImmunizationNotFound = errors.New("immunization record not found")
)

// Credential errors.
var (
	// ErrCredentialsRequired is returned when username or password is empty.
	ErrCredentialsRequired = errors.New("username and password are required")

	// ErrUsernameExists indicates the username is already taken.
	ErrUsernameExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned on unknown username or password
	// mismatch. Deliberately indistinct between the two cases.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
