package domain

//go:generate mockgen -source=password_hashing.go -destination=../../../gen/mocks/auth/password_hashing.go -package=authmocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) (bool, error)
}

// DummyPasswordHash is a well-formed argon2id hash with the hasher's parameters that
// matches no real password. Logins for unknown emails are verified against it so
// both failure paths do the same amount of work.
const DummyPasswordHash = "$argon2id$v=19$m=19456,t=2,p=1$Y2hlY2tvdXQtZHVtbXktcw$1tHXaD4ylu9gztjFpQUkueRHq6v/LfEB+qrtRVqAxWk"
