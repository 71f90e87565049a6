package auth

import "testing"

func TestHashVerifyPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "" || hash == "s3cret" {
		t.Fatalf("hash must be a non-empty transform of the input, got %q", hash)
	}

	match, err := VerifyPassword("s3cret", hash)
	if err != nil || !match {
		t.Fatalf("correct password: match=%v err=%v", match, err)
	}
	match, err = VerifyPassword("wrong", hash)
	if err != nil {
		t.Fatalf("VerifyPassword(wrong): %v", err)
	}
	if match {
		t.Fatalf("wrong password must not match")
	}
}

func TestHashPassword_SaltsEveryHash(t *testing.T) {
	h1, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if _, err := VerifyPassword("s3cret", "not-a-phc-string"); err == nil {
		t.Fatalf("expected error for malformed encoded hash")
	}
}
