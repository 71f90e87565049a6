package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mribeiro/go-vacina-backend/internal/auth"
	"github.com/mribeiro/go-vacina-backend/internal/repo"
)

func newAuthSvc(t *testing.T) *AuthService {
	t.Helper()
	return &AuthService{
		DB:     newSvcDB(t),
		Tokens: auth.NewManager("test-secret", time.Hour),
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newAuthSvc(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "maria", "s3cret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := repo.GetUserByUsername(ctx, svc.DB, "maria")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret" {
		t.Fatalf("password must be stored hashed, got %q", user.PasswordHash)
	}
}

func TestAuthService_Register_CredentialsRequired(t *testing.T) {
	svc := newAuthSvc(t)
	ctx := context.Background()

	cases := []struct{ user, pass string }{
		{"", "x"},
		{"maria", ""},
		{"   ", "x"},
	}
	for _, tc := range cases {
		if err := svc.Register(ctx, tc.user, tc.pass); !errors.Is(err, ErrCredentialsRequired) {
			t.Fatalf("Register(%q, %q): err=%v, want ErrCredentialsRequired", tc.user, tc.pass, err)
		}
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc := newAuthSvc(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "maria", "s3cret"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := svc.Register(ctx, "maria", "other"); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("duplicate register: err=%v, want ErrUsernameExists", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthSvc(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "maria", "s3cret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := svc.Login(ctx, "maria", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a non-empty token")
	}

	user, err := repo.GetUserByUsername(ctx, svc.DB, "maria")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	uid, err := svc.Tokens.Parse(token)
	if err != nil || uid != user.ID {
		t.Fatalf("token should resolve to user %d: uid=%d err=%v", user.ID, uid, err)
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc := newAuthSvc(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "maria", "s3cret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Unknown username and wrong password must be indistinguishable.
	if _, err := svc.Login(ctx, "nobody", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: err=%v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "maria", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err=%v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("empty credentials: err=%v, want ErrInvalidCredentials", err)
	}
}
