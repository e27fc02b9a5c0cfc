package domain

import (
	"context"
	"strings"
)

//go:generate mockgen -source=credentials.go -destination=../../../gen/mocks/market/credentials.go -package=mocks

type Credentials struct {
	UserID       int64
	Username     string
	PasswordHash string
}

// Registration is what a new account supplies. Password is plain text and
// never leaves the auth case.
type Registration struct {
	Username string
	Password string
	Email    string
	Phone    string
}

// Normalize trims the identity fields and reports the first missing one.
func (r Registration) Normalize() (Registration, error) {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)

	switch {
	case r.Username == "":
		return Registration{}, &InvalidArgumentsError{Msg: "username must not be empty"}
	case strings.TrimSpace(r.Password) == "":
		return Registration{}, &InvalidArgumentsError{Msg: "password must not be empty"}
	case r.Email == "":
		return Registration{}, &InvalidArgumentsError{Msg: "email must not be empty"}
	case r.Phone == "":
		return Registration{}, &InvalidArgumentsError{Msg: "phone must not be empty"}
	}

	return r, nil
}

type NewAccount struct {
	Username     string
	Email        string
	Phone        string
	PasswordHash string
}

type CredentialsRepository interface {
	TryGetCredentials(ctx context.Context, username string) (Credentials, bool, error)
	GetCredentials(ctx context.Context, userID int64) (Credentials, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
	// CreateAccount fails with UsernameTakenError when the username is in use.
	CreateAccount(ctx context.Context, account NewAccount) (User, error)
}
