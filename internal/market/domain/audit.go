package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=audit.go -destination=../../../gen/mocks/market/audit.go -package=mocks

type AuditEventType string

const (
	AuditOrderCreate   AuditEventType = "ORDER_CREATE"
	AuditOrderConfirm  AuditEventType = "ORDER_CONFIRM"
	AuditOrderComplete AuditEventType = "ORDER_COMPLETE"
	AuditOrderCancel   AuditEventType = "ORDER_CANCEL"
	AuditUserRecharge  AuditEventType = "USER_RECHARGE"
	AuditUserDelete    AuditEventType = "USER_DELETE"
	AuditItemPublish   AuditEventType = "ITEM_PUBLISH"
	AuditItemUpdate    AuditEventType = "ITEM_UPDATE"
	AuditItemDelete    AuditEventType = "ITEM_DELETE"
	AuditUserUpdate    AuditEventType = "USER_UPDATE"
	AuditAuthRegister  AuditEventType = "AUTH_REGISTER"
	AuditAuthLogin     AuditEventType = "AUTH_LOGIN"
)

type AuditEvent struct {
	ID   uuid.UUID
	Type AuditEventType
	// UserID is zero for events not tied to a user.
	UserID    int64
	Details   string
	CreatedAt time.Time
}

// AuditSink accepts events without blocking. A failure to record never
// affects the operation that produced the event.
type AuditSink interface {
	Record(ctx context.Context, event AuditEvent)
}

type AuditLog interface {
	Append(ctx context.Context, event AuditEvent) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]AuditEvent, error)
	ListByType(ctx context.Context, eventType AuditEventType, limit int) ([]AuditEvent, error)
}
