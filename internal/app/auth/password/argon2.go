// Package password hashes and verifies user passwords with argon2id.
package password

import (
	"github.com/alexedwards/argon2id"

	customErrors "github.com/condiments/condiments-api/internal/domain/errors"
)

var DefaultParams = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) (bool, error)
}

// Argon2idHasher produces PHC-encoded digests ($argon2id$v=19$m=...,t=...,p=...$salt$key).
// The pepper, when set, is appended to every plaintext and never stored.
type Argon2idHasher struct {
	params *argon2id.Params
	pepper string
}

func NewArgon2idHasher(params *argon2id.Params, pepper string) *Argon2idHasher {
	if params == nil {
		params = DefaultParams
	}
	return &Argon2idHasher{params: params, pepper: pepper}
}

func (h *Argon2idHasher) Hash(plaintext string) (string, error) {
	digest, err := argon2id.CreateHash(plaintext+h.pepper, h.params)
	if err != nil {
		return "", customErrors.WrapInternal(err, "hash password")
	}
	return digest, nil
}

// Verify reads the salt and parameters from digest, so digests created with
// older parameters keep verifying after the work factor is raised.
func (h *Argon2idHasher) Verify(plaintext, digest string) (bool, error) {
	ok, err := argon2id.ComparePasswordAndHash(plaintext+h.pepper, digest)
	if err != nil {
		return false, customErrors.WrapInternal(err, "verify password")
	}
	return ok, nil
}
