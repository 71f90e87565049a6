// Person registry HTTP handlers.
//
// This file exposes REST endpoints for person resources:
//   - POST   /pessoas                        (register; requires bearer token)
//   - GET    /pessoas                        (list)
//   - GET    /pessoas/{id}                   (fetch)
//   - DELETE /pessoas/{id}                   (delete, cascades; requires bearer token)
//   - GET    /pessoas/{id}/cartao_vacinacao  (vaccination card)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mribeiro/go-vacina-backend/internal/services"
)

// CreatePersonRequest is the JSON payload for registering a person.
type CreatePersonRequest struct {
	// Nome is the person's full name (required).
	Nome string `json:"nome"`
	// NumeroIdentificacao is the unique identification number, e.g. CPF (required).
	NumeroIdentificacao string `json:"numero_identificacao"`
}

// CreatePerson handles POST /pessoas.
func (h *Handlers) CreatePerson(c *gin.Context) {
	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p, err := h.persons.Create(c.Request.Context(), req.Nome, req.NumeroIdentificacao)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPersonFieldsRequired):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "nome and numero_identificacao are required")
		case errors.Is(err, services.ErrPersonExists):
			fail(c, http.StatusConflict, ErrCodeConflict, "pessoa with numero_identificacao '"+req.NumeroIdentificacao+"' already exists")
		default:
			failInternal(c, err)
		}
		return
	}
	ok(c, http.StatusCreated, toPersonResponse(p))
}

// ListPersons handles GET /pessoas.
func (h *Handlers) ListPersons(c *gin.Context) {
	ps, err := h.persons.List(c.Request.Context())
	if err != nil {
		failInternal(c, err)
		return
	}
	ok(c, http.StatusOK, toPersonList(ps))
}

// GetPerson handles GET /pessoas/:id.
func (h *Handlers) GetPerson(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}

	p, err := h.persons.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pessoa not found")
			return
		}
		failInternal(c, err)
		return
	}
	ok(c, http.StatusOK, toPersonResponse(p))
}

// DeletePerson handles DELETE /pessoas/:id. Deleting a person also removes
// their entire vaccination history.
func (h *Handlers) DeletePerson(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}

	if err := h.persons.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pessoa not found")
			return
		}
		failInternal(c, err)
		return
	}
	noContent(c)
}

// GetVaccinationCard handles GET /pessoas/:id/cartao_vacinacao. A person with
// no recorded doses gets a card with an empty vacinas_registradas list.
func (h *Handlers) GetVaccinationCard(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}

	card, err := h.immunizations.BuildCard(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pessoa not found")
			return
		}
		failInternal(c, err)
		return
	}
	ok(c, http.StatusOK, toCardResponse(card))
}
