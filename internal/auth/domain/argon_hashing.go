package domain

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

// DummyPasswordHash must stay in sync with these parameters.
var defaultHashParams = &argon2id.Params{
	Memory:      19 * 1024, // 19 MB
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

type ArgonPasswordHasher struct {
	params *argon2id.Params
}

func NewArgonPasswordHasher() *ArgonPasswordHasher {
	return &ArgonPasswordHasher{
		params: defaultHashParams,
	}
}

func (ph *ArgonPasswordHasher) HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, ph.params)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hash, nil
}

// VerifyPassword compares in constant time.
func (ph *ArgonPasswordHasher) VerifyPassword(password, hashedPassword string) (bool, error) {
	match, err := argon2id.ComparePasswordAndHash(password, hashedPassword)
	if err != nil {
		return false, fmt.Errorf("failed to verify password: %w", err)
	}

	return match, nil
}
