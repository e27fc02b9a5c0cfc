package application

import (
	"context"
	"time"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/google/uuid"
)

const persistTimeout = 3 * time.Second

// AuditRecorder buffers audit events and writes them to the audit log from a
// single background worker. Record never blocks: when the buffer is full the
// event is dropped with a warning.
type AuditRecorder struct {
	auditLog domain.AuditLog
	clock    domain.Clock
	logger   logging.Logger

	events chan domain.AuditEvent
}

func NewAuditRecorder(auditLog domain.AuditLog, clock domain.Clock, logger logging.Logger, bufferSize int) *AuditRecorder {
	if bufferSize < 1 {
		bufferSize = 1
	}

	return &AuditRecorder{
		auditLog: auditLog,
		clock:    clock,
		logger:   logger,
		events:   make(chan domain.AuditEvent, bufferSize),
	}
}

func (ar *AuditRecorder) Record(_ context.Context, event domain.AuditEvent) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = ar.clock.Now()
	}

	select {
	case ar.events <- event:
	default:
		ar.logger.Warn("audit buffer is full, event dropped", "type", string(event.Type), "user_id", event.UserID)
	}
}

// Run persists events until ctx is done, then flushes whatever is still buffered.
func (ar *AuditRecorder) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			ar.drain(context.WithoutCancel(ctx))
			return
		case event := <-ar.events:
			ar.persist(ctx, event)
		}
	}
}

func (ar *AuditRecorder) drain(ctx context.Context) {
	for {
		select {
		case event := <-ar.events:
			ar.persist(ctx, event)
		default:
			return
		}
	}
}

func (ar *AuditRecorder) persist(ctx context.Context, event domain.AuditEvent) {
	persistCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	if err := ar.auditLog.Append(persistCtx, event); err != nil {
		ar.logger.Error("failed to persist audit event",
			"id", event.ID.String(),
			"type", string(event.Type),
			"error", err.Error(),
		)
	}
}
