// Handler wiring.
//
// Handlers are transport-thin: they validate input shape, delegate to
// application services, and translate domain outcomes into HTTP responses.
// They depend on abstract service interfaces to keep transport concerns
// separate from business logic.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mribeiro/go-vacina-backend/internal/domain"
	"github.com/mribeiro/go-vacina-backend/internal/services"
)

// VaccineService defines catalog operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type VaccineService interface {
	// Create adds a vaccine; an empty category defaults to "Geral".
	Create(ctx context.Context, name, category string) (*domain.Vaccine, error)
	// List returns the catalog, optionally filtered by exact category.
	List(ctx context.Context, category string) ([]domain.Vaccine, error)
	// Get fetches a vaccine by id.
	Get(ctx context.Context, id uint) (*domain.Vaccine, error)
	// Delete removes a vaccine and cascades over its dose records.
	Delete(ctx context.Context, id uint) error
}

// PersonService defines registry operations consumed by HTTP handlers.
type PersonService interface {
	// Create registers a person with a unique identification number.
	Create(ctx context.Context, name, externalID string) (*domain.Person, error)
	// List returns all registered persons.
	List(ctx context.Context) ([]domain.Person, error)
	// Get fetches a person by id.
	Get(ctx context.Context, id uint) (*domain.Person, error)
	// Delete removes a person and cascades over their dose records.
	Delete(ctx context.Context, id uint) error
}

// ImmunizationService defines dose-ledger operations consumed by HTTP handlers.
type ImmunizationService interface {
	// Record persists one dose administration.
	Record(ctx context.Context, personID, vaccineID uint, doseLabel, appliedAt string) (*domain.Immunization, error)
	// Delete removes one dose record.
	Delete(ctx context.Context, id uint) error
	// BuildCard assembles a person's vaccination card.
	BuildCard(ctx context.Context, personID uint) (*services.Card, error)
}

// AuthService defines credential operations consumed by HTTP handlers.
type AuthService interface {
	// Register creates a credential; only a one-way hash is stored.
	Register(ctx context.Context, username, password string) error
	// Login verifies credentials and issues a signed access token.
	Login(ctx context.Context, username, password string) (string, error)
}

// Handlers groups the HTTP endpoints for the vaccine catalog, person
// registry, dose ledger, and credentials.
type Handlers struct {
	vaccines      VaccineService
	persons       PersonService
	immunizations ImmunizationService
	auth          AuthService
}

// New constructs a Handlers instance bound to the given services.
func New(vaccines VaccineService, persons PersonService, immunizations ImmunizationService, auth AuthService) *Handlers {
	return &Handlers{
		vaccines:      vaccines,
		persons:       persons,
		immunizations: immunizations,
		auth:          auth,
	}
}

// idParam parses the ":id" path parameter as a positive integer. On failure
// it writes a 400 envelope naming the parameter and reports false.
func idParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
