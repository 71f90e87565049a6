// Dose ledger HTTP handlers.
//
// This file exposes REST endpoints for dose records:
//   - POST   /vacinacoes      (record a dose; requires bearer token)
//   - DELETE /vacinacoes/{id} (delete a dose record; requires bearer token)
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mribeiro/go-vacina-backend/internal/domain"
	"github.com/mribeiro/go-vacina-backend/internal/services"
)

// RecordImmunizationRequest is the JSON payload for recording a dose.
type RecordImmunizationRequest struct {
	// PessoaID references the person receiving the dose (required).
	PessoaID uint `json:"pessoa_id"`
	// VacinaID references the administered vaccine (required).
	VacinaID uint `json:"vacina_id"`
	// DoseAplicada must be a member of the closed dose-label set (required).
	DoseAplicada string `json:"dose_aplicada"`
	// DataAplicacao is optional; format YYYY-MM-DDTHH:MM:SS. Defaults to the
	// current time when omitted.
	DataAplicacao string `json:"data_aplicacao"`
}

// RecordImmunization handles POST /vacinacoes.
func (h *Handlers) RecordImmunization(c *gin.Context) {
	var req RecordImmunizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	rec, err := h.immunizations.Record(c.Request.Context(), req.PessoaID, req.VacinaID, req.DoseAplicada, req.DataAplicacao)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDoseFieldsRequired):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "pessoa_id, vacina_id and dose_aplicada are required")
		case errors.Is(err, services.ErrInvalidDoseLabel):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest,
				fmt.Sprintf("dose_aplicada %q is not valid; accepted values: %s",
					req.DoseAplicada, strings.Join(domain.DoseLabels, ", ")))
		case errors.Is(err, services.ErrInvalidAppliedAt):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest,
				fmt.Sprintf("data_aplicacao %q is not valid; expected format %s",
					req.DataAplicacao, domain.AppliedAtLayout))
		case errors.Is(err, services.ErrPersonNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pessoa not found")
		case errors.Is(err, services.ErrVaccineNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "vacina not found")
		case errors.Is(err, services.ErrDuplicateImmunization):
			fail(c, http.StatusConflict, ErrCodeConflict,
				fmt.Sprintf("dose %q of vacina %d already recorded for pessoa %d",
					req.DoseAplicada, req.VacinaID, req.PessoaID))
		default:
			failInternal(c, err)
		}
		return
	}
	ok(c, http.StatusCreated, toImmunizationResponse(rec))
}

// DeleteImmunization handles DELETE /vacinacoes/:id.
func (h *Handlers) DeleteImmunization(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}

	if err := h.immunizations.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrImmunizationNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "vacinacao not found")
			return
		}
		failInternal(c, err)
		return
	}
	noContent(c)
}
