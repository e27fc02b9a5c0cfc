package domain

import (
	"context"
	"time"

	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=users.go -destination=../../../gen/mocks/market/users.go -package=mocks

// User is registered outside this service. Balance only changes through a
// BalanceLedger and is never negative.
type User struct {
	ID        int64
	Username  string
	Email     string
	Phone     string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UsersRepository interface {
	GetUser(ctx context.Context, userID int64) (User, error)
	// LockUsers takes row locks in ascending id order and fails with
	// UserNotFoundError if any of the ids is missing.
	LockUsers(ctx context.Context, querier database.Querier, userIDs []int64) (map[int64]User, error)
	DeleteUser(ctx context.Context, executor database.Executor, userID int64) error
	UpdateContacts(ctx context.Context, userID int64, email, phone string) (User, error)
}
