package postgres

import (
	"testing"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsRepository_TryGetCredentials(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		username string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedCreds domain.Credentials
		expectedFound bool
		expectedErr   error
	}

	tests := []testCase{
		{
			name:     "known username",
			username: "alice",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash"}).
					AddRow(int64(3), "alice", "$argon2id$hash")
				mock.ExpectQuery("SELECT id, username, password_hash FROM users WHERE username").
					WithArgs("alice").
					WillReturnRows(rows)
			},
			expectedCreds: domain.Credentials{UserID: 3, Username: "alice", PasswordHash: "$argon2id$hash"},
			expectedFound: true,
		},
		{
			name:     "unknown username",
			username: "ghost",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT id, username, password_hash FROM users WHERE username").
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:     "database error",
			username: "alice",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT id, username, password_hash FROM users WHERE username").
					WithArgs("alice").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewCredentialsRepository(mock)
			creds, found, err := repo.TryGetCredentials(t.Context(), tt.username)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedFound, found)
				assert.Equal(t, tt.expectedCreds, creds)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCredentialsRepository_CreateAccount(t *testing.T) {
	t.Parallel()

	account := domain.NewAccount{
		Username:     "alice",
		Email:        "alice@example.com",
		Phone:        "+100",
		PasswordHash: "$argon2id$hash",
	}

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name: "account created with zero balance",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows(userRowColumns).
					AddRow(int64(9), "alice", "alice@example.com", "+100", "0.00", fixedTime, fixedTime)
				mock.ExpectQuery("INSERT INTO users (.+) RETURNING").
					WithArgs("alice", "alice@example.com", "+100", "$argon2id$hash").
					WillReturnRows(rows)
			},
		},
		{
			name: "username taken",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO users").
					WithArgs("alice", "alice@example.com", "+100", "$argon2id$hash").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: &domain.UsernameTakenError{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO users").
					WithArgs("alice", "alice@example.com", "+100", "$argon2id$hash").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewCredentialsRepository(mock)
			user, err := repo.CreateAccount(t.Context(), account)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(9), user.ID)
				assert.Equal(t, "alice", user.Username)
				assert.True(t, user.Balance.IsZero())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCredentialsRepository_GetCredentials(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectQuery("SELECT id, username, password_hash FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow(int64(1), "alice", "$argon2id$hash"))
	mock.ExpectQuery("SELECT id, username, password_hash FROM users WHERE id").
		WithArgs(int64(2)).
		WillReturnError(pgx.ErrNoRows)

	repo := NewCredentialsRepository(mock)

	creds, err := repo.GetCredentials(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", creds.Username)
	assert.Equal(t, "$argon2id$hash", creds.PasswordHash)

	_, err = repo.GetCredentials(t.Context(), 2)
	assert.ErrorIs(t, err, &domain.UserNotFoundError{})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialsRepository_UpdatePasswordHash(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		userID int64

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name:   "hash replaced",
			userID: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE users SET password_hash").
					WithArgs(int64(1), "$argon2id$new").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:   "user not found",
			userID: 2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE users SET password_hash").
					WithArgs(int64(2), "$argon2id$new").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name:   "database error",
			userID: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE users SET password_hash").
					WithArgs(int64(1), "$argon2id$new").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			err = NewCredentialsRepository(mock).UpdatePasswordHash(t.Context(), tt.userID, "$argon2id$new")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
