// Vaccine catalog HTTP handlers.
//
// This file exposes REST endpoints for vaccine resources:
//   - POST   /vacinas       (create; requires bearer token)
//   - GET    /vacinas       (list, optional ?categoria= filter)
//   - GET    /vacinas/{id}  (fetch)
//   - DELETE /vacinas/{id}  (delete, cascades; requires bearer token)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mribeiro/go-vacina-backend/internal/services"
)

// CreateVaccineRequest is the JSON payload for adding a vaccine.
type CreateVaccineRequest struct {
	// Nome is the unique vaccine name (required).
	Nome string `json:"nome"`
	// Categoria is optional and defaults to "Geral".
	Categoria string `json:"categoria"`
}

// CreateVaccine handles POST /vacinas.
func (h *Handlers) CreateVaccine(c *gin.Context) {
	var req CreateVaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	v, err := h.vaccines.Create(c.Request.Context(), req.Nome, req.Categoria)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVaccineNameRequired):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "nome is required")
		case errors.Is(err, services.ErrVaccineExists):
			fail(c, http.StatusConflict, ErrCodeConflict, "vacina '"+req.Nome+"' already exists")
		default:
			failInternal(c, err)
		}
		return
	}
	ok(c, http.StatusCreated, toVaccineResponse(v))
}

// ListVaccines handles GET /vacinas. The optional "categoria" query parameter
// restricts the result to exact category matches.
func (h *Handlers) ListVaccines(c *gin.Context) {
	vs, err := h.vaccines.List(c.Request.Context(), c.Query("categoria"))
	if err != nil {
		failInternal(c, err)
		return
	}
	ok(c, http.StatusOK, toVaccineList(vs))
}

// GetVaccine handles GET /vacinas/:id.
func (h *Handlers) GetVaccine(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}

	v, err := h.vaccines.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrVaccineNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "vacina not found")
			return
		}
		failInternal(c, err)
		return
	}
	ok(c, http.StatusOK, toVaccineResponse(v))
}

// DeleteVaccine handles DELETE /vacinas/:id. Deleting a vaccine also removes
// every dose record referencing it.
func (h *Handlers) DeleteVaccine(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}

	if err := h.vaccines.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrVaccineNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "vacina not found")
			return
		}
		failInternal(c, err)
		return
	}
	noContent(c)
}
