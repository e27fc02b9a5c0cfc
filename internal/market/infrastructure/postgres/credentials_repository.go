package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type CredentialsRepository struct {
	querier database.QueryExecuter
}

func NewCredentialsRepository(querier database.QueryExecuter) *CredentialsRepository {
	return &CredentialsRepository{
		querier: querier,
	}
}

func (cr *CredentialsRepository) TryGetCredentials(ctx context.Context, username string) (domain.Credentials, bool, error) {
	var creds domain.Credentials
	sql := `SELECT id, username, password_hash FROM users WHERE username = $1`

	err := cr.querier.QueryRow(ctx, sql, username).Scan(&creds.UserID, &creds.Username, &creds.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Credentials{}, false, nil
		}

		return domain.Credentials{}, false, fmt.Errorf("failed to get credentials: %w", err)
	}

	return creds, true, nil
}

func (cr *CredentialsRepository) CreateAccount(ctx context.Context, account domain.NewAccount) (domain.User, error) {
	sql := `INSERT INTO users (username, email, phone, password_hash) VALUES ($1, $2, $3, $4) RETURNING ` + userColumns

	user, err := scanUser(cr.querier.QueryRow(ctx, sql, account.Username, account.Email, account.Phone, account.PasswordHash))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.User{}, &domain.UsernameTakenError{Msg: fmt.Sprintf("username %q is already taken", account.Username)}
		}

		return domain.User{}, fmt.Errorf("failed to create account: %w", err)
	}

	return user, nil
}

func (cr *CredentialsRepository) GetCredentials(ctx context.Context, userID int64) (domain.Credentials, error) {
	var creds domain.Credentials
	sql := `SELECT id, username, password_hash FROM users WHERE id = $1`

	err := cr.querier.QueryRow(ctx, sql, userID).Scan(&creds.UserID, &creds.Username, &creds.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Credentials{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return domain.Credentials{}, fmt.Errorf("failed to get credentials: %w", err)
	}

	return creds, nil
}

func (cr *CredentialsRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	sql := `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`

	tag, err := cr.querier.Exec(ctx, sql, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
	}

	return nil
}
