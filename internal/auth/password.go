// Package auth provides the credential primitives used by the API: one-way
// password hashing and signed access tokens. Nothing in this package touches
// the database; it is pure policy.
package auth

import "github.com/alexedwards/argon2id"

// hashParams tunes Argon2id. The parameters are embedded in each produced
// hash, so they can be raised later without invalidating stored credentials.
var hashParams = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  3,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// HashPassword derives an Argon2id hash from the plaintext password.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, hashParams)
}

// VerifyPassword reports whether password matches the encoded hash. The hash
// carries its own parameters, so verification works across parameter changes.
func VerifyPassword(password, encodedHash string) (bool, error) {
	return argon2id.ComparePasswordAndHash(password, encodedHash)
}
