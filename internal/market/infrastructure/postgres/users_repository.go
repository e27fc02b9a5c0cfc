package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, email, phone, balance::text, created_at, updated_at`

type UsersRepository struct {
	querier database.Querier
}

func NewUsersRepository(querier database.Querier) *UsersRepository {
	return &UsersRepository{
		querier: querier,
	}
}

func (ur *UsersRepository) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(ur.querier.QueryRow(ctx, sql, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (ur *UsersRepository) LockUsers(ctx context.Context, querier database.Querier, userIDs []int64) (map[int64]domain.User, error) {
	ids := uniqueSorted(userIDs)
	lockUsersSQL := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1) ORDER BY id FOR UPDATE`

	rows, err := querier.Query(ctx, lockUsersSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user rows: %w", err)
	}
	defer rows.Close()

	users := make(map[int64]domain.User, len(ids))
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}

		users[user.ID] = user
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to lock user rows: %w", err)
	}

	for _, id := range ids {
		if _, ok := users[id]; !ok {
			return nil, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", id)}
		}
	}

	return users, nil
}

func (ur *UsersRepository) DeleteUser(ctx context.Context, executor database.Executor, userID int64) error {
	sql := `DELETE FROM users WHERE id = $1`

	tag, err := executor.Exec(ctx, sql, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
	}

	return nil
}

func (ur *UsersRepository) UpdateContacts(ctx context.Context, userID int64, email, phone string) (domain.User, error) {
	sql := `UPDATE users SET email = $2, phone = $3, updated_at = now() WHERE id = $1 RETURNING ` + userColumns

	user, err := scanUser(ur.querier.QueryRow(ctx, sql, userID, email, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return domain.User{}, fmt.Errorf("failed to update user contacts: %w", err)
	}

	return user, nil
}

func scanUser(row rowScanner) (domain.User, error) {
	var user domain.User
	var balance string

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Phone, &balance, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}

	user.Balance, err = parseMoney(balance)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}
