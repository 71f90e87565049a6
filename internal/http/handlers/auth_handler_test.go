package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/mribeiro/go-vacina-backend/internal/services"
)

func TestRegister_Created(t *testing.T) {
	var gotUser, gotPass string
	h := New(
		&stubVaccines{}, &stubPersons{}, &stubImmunizations{},
		&stubAuth{registerFn: func(_ context.Context, username, password string) error {
			gotUser, gotPass = username, password
			return nil
		}},
	)
	r := newHandlerRouter(t, h)

	w := doJSON(t, r, http.MethodPost, "/register", CredentialsRequest{Username: "maria", Password: "s3cret"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body=%s)", w.Code, w.Body.String())
	}
	if gotUser != "maria" || gotPass != "s3cret" {
		t.Fatalf("service got (%q, %q)", gotUser, gotPass)
	}
}

func TestRegister_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"missing credentials", services.ErrCredentialsRequired, http.StatusBadRequest, ErrCodeBadRequest},
		{"duplicate username", services.ErrUsernameExists, http.StatusConflict, ErrCodeConflict},
		{"hash failure", errors.New("argon2id exploded"), http.StatusInternalServerError, ErrCodeInternal},
	}
	for _, tc := range cases {
		h := New(
			&stubVaccines{}, &stubPersons{}, &stubImmunizations{},
			&stubAuth{registerFn: func(context.Context, string, string) error { return tc.err }},
		)
		r := newHandlerRouter(t, h)

		w := doJSON(t, r, http.MethodPost, "/register", CredentialsRequest{Username: "maria", Password: "x"})
		if w.Code != tc.wantStatus {
			t.Fatalf("%s: status = %d, want %d", tc.name, w.Code, tc.wantStatus)
		}
		resp := decodeError(t, w)
		if resp.Code != tc.wantCode {
			t.Fatalf("%s: code = %q, want %q", tc.name, resp.Code, tc.wantCode)
		}
		if tc.wantStatus == http.StatusInternalServerError && strings.Contains(resp.Message, "argon2id") {
			t.Fatalf("%s: internal error leaked: %q", tc.name, resp.Message)
		}
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	h := New(
		&stubVaccines{}, &stubPersons{}, &stubImmunizations{},
		&stubAuth{loginFn: func(context.Context, string, string) (string, error) {
			return "signed.jwt.token", nil
		}},
	)
	r := newHandlerRouter(t, h)

	w := doJSON(t, r, http.MethodPost, "/login", CredentialsRequest{Username: "maria", Password: "s3cret"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", w.Code, w.Body.String())
	}

	var resp TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AccessToken != "signed.jwt.token" {
		t.Fatalf("access_token = %q", resp.AccessToken)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := New(
		&stubVaccines{}, &stubPersons{}, &stubImmunizations{},
		&stubAuth{loginFn: func(context.Context, string, string) (string, error) {
			return "", services.ErrInvalidCredentials
		}},
	)
	r := newHandlerRouter(t, h)

	w := doJSON(t, r, http.MethodPost, "/login", CredentialsRequest{Username: "maria", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if resp := decodeError(t, w); resp.Code != ErrCodeUnauthorized {
		t.Fatalf("code = %q, want %q", resp.Code, ErrCodeUnauthorized)
	}
}

func TestLogin_BadJSON(t *testing.T) {
	h := New(&stubVaccines{}, &stubPersons{}, &stubImmunizations{}, &stubAuth{})
	r := newHandlerRouter(t, h)

	w := doJSON(t, r, http.MethodPost, "/login", []string{"nope"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
