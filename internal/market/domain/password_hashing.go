package domain

//go:generate mockgen -source=password_hashing.go -destination=../../../gen/mocks/market/password_hashing.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) (bool, error)
	// NeedsRehash reports whether the stored hash is weaker than new hashes.
	NeedsRehash(hashedPassword string) bool
}
