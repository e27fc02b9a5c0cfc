package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/jwt"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
)

const (
	tokenTimeLimit = 24 * time.Hour
)

var errCredentialsMismatch = &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}

type Authenticator struct {
	credentials    domain.CredentialsRepository
	passwordHasher domain.PasswordHasher
	tokenIssuer    jwt.TokenIssuer
	secretKey      []byte

	audit  domain.AuditSink
	logger logging.Logger
}

func NewAuthenticator(
	credentials domain.CredentialsRepository,
	passwordHasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
	secretKey string,
	audit domain.AuditSink,
	logger logging.Logger,
) *Authenticator {
	return &Authenticator{
		credentials:    credentials,
		passwordHasher: passwordHasher,
		tokenIssuer:    tokenIssuer,
		secretKey:      []byte(secretKey),
		audit:          audit,
		logger:         logger,
	}
}

func (a *Authenticator) Register(ctx context.Context, registration domain.Registration) (domain.User, error) {
	registration, err := registration.Normalize()
	if err != nil {
		return domain.User{}, err
	}

	hashedPassword, err := a.passwordHasher.HashPassword(registration.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.credentials.CreateAccount(ctx, domain.NewAccount{
		Username:     registration.Username,
		Email:        registration.Email,
		Phone:        registration.Phone,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		return domain.User{}, err
	}

	a.logger.Info("user registered", "user_id", user.ID)
	a.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditAuthRegister,
		UserID:  user.ID,
		Details: fmt.Sprintf("user %q registered", user.Username),
	})

	return user, nil
}

// Authenticate reports the same error for an unknown username and a wrong
// password.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (string, error) {
	creds, found, err := a.credentials.TryGetCredentials(ctx, username)
	if err != nil {
		return "", err
	}

	if !found || creds.PasswordHash == "" {
		return "", errCredentialsMismatch
	}

	valid, err := a.passwordHasher.VerifyPassword(password, creds.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}

	if !valid {
		return "", errCredentialsMismatch
	}

	if a.passwordHasher.NeedsRehash(creds.PasswordHash) {
		a.upgradeHash(ctx, creds.UserID, password)
	}

	token, err := a.tokenIssuer.IssueToken(a.secretKey, creds.UserID, creds.Username, tokenTimeLimit)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditAuthLogin,
		UserID:  creds.UserID,
		Details: fmt.Sprintf("user %q logged in", creds.Username),
	})

	return token, nil
}

// upgradeHash stores a hash at the current cost. Login proceeds when it fails.
func (a *Authenticator) upgradeHash(ctx context.Context, userID int64, password string) {
	hashedPassword, err := a.passwordHasher.HashPassword(password)
	if err == nil {
		err = a.credentials.UpdatePasswordHash(ctx, userID, hashedPassword)
	}

	if err != nil {
		a.logger.Warn("failed to upgrade password hash", "user_id", userID, "error", err.Error())
		return
	}

	a.logger.Info("password hash upgraded", "user_id", userID)
}

// ChangePassword replaces the stored hash once oldPassword verifies against it.
func (a *Authenticator) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return &domain.InvalidArgumentsError{Msg: "new password must not be empty"}
	}

	creds, err := a.credentials.GetCredentials(ctx, userID)
	if err != nil {
		return err
	}

	if creds.PasswordHash == "" {
		return errCredentialsMismatch
	}

	valid, err := a.passwordHasher.VerifyPassword(oldPassword, creds.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}

	if !valid {
		return errCredentialsMismatch
	}

	hashedPassword, err := a.passwordHasher.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.credentials.UpdatePasswordHash(ctx, userID, hashedPassword); err != nil {
		return err
	}

	a.logger.Info("password changed", "user_id", userID)
	a.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditUserUpdate,
		UserID:  userID,
		Details: "password changed",
	})

	return nil
}
