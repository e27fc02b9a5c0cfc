package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/google/uuid"
)

const auditColumns = `id::text, operation_type, COALESCE(user_id, 0), description, created_at`

type AuditLogRepository struct {
	queryExecuter database.QueryExecuter
}

func NewAuditLogRepository(queryExecuter database.QueryExecuter) *AuditLogRepository {
	return &AuditLogRepository{
		queryExecuter: queryExecuter,
	}
}

func (ar *AuditLogRepository) Append(ctx context.Context, event domain.AuditEvent) error {
	sql := `INSERT INTO system_logs (id, operation_type, user_id, description, created_at)
			VALUES ($1::uuid, $2, NULLIF($3::bigint, 0), $4, $5)`

	_, err := ar.queryExecuter.Exec(ctx, sql, event.ID.String(), string(event.Type), event.UserID, event.Details, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append audit event: %w", err)
	}

	return nil
}

func (ar *AuditLogRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.AuditEvent, error) {
	sql := `SELECT ` + auditColumns + ` FROM system_logs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	return ar.listEvents(ctx, sql, userID, limit)
}

func (ar *AuditLogRepository) ListByType(ctx context.Context, eventType domain.AuditEventType, limit int) ([]domain.AuditEvent, error) {
	sql := `SELECT ` + auditColumns + ` FROM system_logs WHERE operation_type = $1 ORDER BY created_at DESC LIMIT $2`
	return ar.listEvents(ctx, sql, string(eventType), limit)
}

func (ar *AuditLogRepository) listEvents(ctx context.Context, sql string, args ...any) ([]domain.AuditEvent, error) {
	rows, err := ar.queryExecuter.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.AuditEvent, 0)
	for rows.Next() {
		var event domain.AuditEvent
		var id, eventType string

		if err := rows.Scan(&id, &eventType, &event.UserID, &event.Details, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}

		event.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("failed to parse audit event id: %w", err)
		}

		event.Type = domain.AuditEventType(eventType)
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}

	return events, nil
}
