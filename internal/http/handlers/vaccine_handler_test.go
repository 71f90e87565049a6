package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/mribeiro/go-vacina-backend/internal/domain"
	"github.com/mribeiro/go-vacina-backend/internal/services"
)

func TestCreateVaccine_Created(t *testing.T) {
	h := New(
		&stubVaccines{createFn: func(_ context.Context, name, category string) (*domain.Vaccine, error) {
			return &domain.Vaccine{ID: 1, Name: name, Category: category}, nil
		}},
		&stubPersons{}, &stubImmunizations{}, &stubAuth{},
	)
	r := newHandlerRouter(t, h)

	w := doJSON(t, r, http.MethodPost, "/vacinas", CreateVaccineRequest{Nome: "BCG", Categoria: "Bacteriana"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body=%s)", w.Code, w.Body.String())
	}

	var resp VaccineResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != 1 || resp.Nome != "BCG" || resp.Categoria != "Bacteriana" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestCreateVaccine_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"missing name", services.ErrVaccineNameRequired, http.StatusBadRequest, ErrCodeBadRequest},
		{"duplicate", services.ErrVaccineExists, http.StatusConflict, ErrCodeConflict},
		{"storage failure", errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeInternal},
	}
	for _, tc := range cases {
		h := New(
			&stubVaccines{createFn: func(context.Context, string, string) (*domain.Vaccine, error) {
				return nil, tc.err
			}},
			&stubPersons{}, &stubImmunizations{}, &stubAuth{},
		)
		r := newHandlerRouter(t, h)

		w := doJSON(t, r, http.MethodPost, "/vacinas", CreateVaccineRequest{Nome: "BCG"})
		if w.Code != tc.wantStatus {
			t.Fatalf("%s: status = %d, want %d", tc.name, w.Code, tc.wantStatus)
		}
		resp := decodeError(t, w)
		if resp.Code != tc.wantCode {
			t.Fatalf("%s: code = %q, want %q", tc.name, resp.Code, tc.wantCode)
		}
		// Internal detail must never surface.
		if tc.wantStatus == http.StatusInternalServerError && strings.Contains(resp.Message, "disk") {
			t.Fatalf("%s: internal error leaked to client: %q", tc.name, resp.Message)
		}
	}
}

func TestCreateVaccine_BadJSON(t *testing.T) {
	h := New(&stubVaccines{}, &stubPersons{}, &stubImmunizations{}, &stubAuth{})
	r := newHandlerRouter(t, h)

	w := doJSON(t, r, http.MethodPost, "/vacinas", "not-an-object")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListVaccines_PassesCategoryFilter(t *testing.T) {
	var gotCategory string
	h := New(
		&stubVaccines{listFn: func(_ context.Context, category string) ([]domain.Vaccine, error) {
			gotCategory = category
			return []domain.Vaccine{{ID: 1, Name: "HEPATITE B", Category: "Viral"}}, nil
		}},
		&stubPersons{}, &stubImmunizations{}, &stubAuth{},
	)
	r := newHandlerRouter(t, h)

	w := doJSON(t, r, http.MethodGet, "/vacinas?categoria=Viral", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotCategory != "Viral" {
		t.Fatalf("category filter = %q, want Viral", gotCategory)
	}

	var resp []VaccineResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) != 1 || resp[0].Nome != "HEPATITE B" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestListVaccines_EmptyIsJSONArray(t *testing.T) {
	h := New(
		&stubVaccines{listFn: func(context.Context, string) ([]domain.Vaccine, error) {
			return nil, nil
		}},
		&stubPersons{}, &stubImmunizations{}, &stubAuth{},
	)
	r := newHandlerRouter(t, h)

	w := doJSON(t, r, http.MethodGet, "/vacinas", nil)
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("empty listing must serialize as [], got %s", w.Body.String())
	}
}

func TestGetVaccine_NotFound(t *testing.T) {
	h := New(
		&stubVaccines{getFn: func(context.Context, uint) (*domain.Vaccine, error) {
			return nil, services.ErrVaccineNotFound
		}},
		&stubPersons{}, &stubImmunizations{}, &stubAuth{},
	)
	r := newHandlerRouter(t, h)

	w := doJSON(t, r, http.MethodGet, "/vacinas/7", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if resp := decodeError(t, w); resp.Code != ErrCodeNotFound {
		t.Fatalf("code = %q, want %q", resp.Code, ErrCodeNotFound)
	}
}

func TestDeleteVaccine_NoContent(t *testing.T) {
	var deleted uint
	h := New(
		&stubVaccines{deleteFn: func(_ context.Context, id uint) error {
			deleted = id
			return nil
		}},
		&stubPersons{}, &stubImmunizations{}, &stubAuth{},
	)
	r := newHandlerRouter(t, h)

	w := doJSON(t, r, http.MethodDelete, "/vacinas/3", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if deleted != 3 {
		t.Fatalf("deleted id = %d, want 3", deleted)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("204 must have an empty body, got %q", w.Body.String())
	}
}
