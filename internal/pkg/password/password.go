// Package password provides the hashing schemes used by the credential
// stores. Public-facing account types use bcrypt; staff accounts use
// Argon2id.
package password

import (
	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes with bcrypt at a fixed cost.
type BcryptHasher struct {
	cost int
}

// NewBcrypt returns a BcryptHasher. Costs outside bcrypt's range fall back
// to bcrypt.DefaultCost.
func NewBcrypt(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Argon2idParams are the parameters used for staff accounts. They are
// encoded into every hash, so changing them does not break existing ones.
var Argon2idParams = &argon2id.Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// Argon2idHasher hashes with Argon2id.
type Argon2idHasher struct {
	params *argon2id.Params
}

func NewArgon2id(params *argon2id.Params) *Argon2idHasher {
	if params == nil {
		params = Argon2idParams
	}
	return &Argon2idHasher{params: params}
}

func (h *Argon2idHasher) Hash(password string) (string, error) {
	return argon2id.CreateHash(password, h.params)
}

// Verify treats a malformed stored hash as a mismatch.
func (h *Argon2idHasher) Verify(hash, password string) bool {
	ok, err := argon2id.ComparePasswordAndHash(password, hash)
	return err == nil && ok
}
