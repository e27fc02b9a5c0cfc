package application

import (
	"context"
	"testing"
	"time"

	marketmocks "github.com/Lexv0lk/marketplace/gen/mocks/market"
	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuditRecorder_PersistsRecordedEvents(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	auditLog := marketmocks.NewMockAuditLog(ctrl)
	clock := marketmocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()

	persisted := make(chan domain.AuditEvent, 1)
	auditLog.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event domain.AuditEvent) error {
			persisted <- event
			return nil
		})

	recorder := NewAuditRecorder(auditLog, clock, logging.DiscardLogger, 4)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		recorder.Run(ctx)
		close(done)
	}()

	recorder.Record(ctx, domain.AuditEvent{Type: domain.AuditOrderCreate, UserID: 1, Details: "order 7"})

	select {
	case event := <-persisted:
		assert.NotEqual(t, uuid.Nil, event.ID)
		assert.Equal(t, testNow, event.CreatedAt)
		assert.Equal(t, domain.AuditOrderCreate, event.Type)
		assert.Equal(t, int64(1), event.UserID)
	case <-time.After(time.Second):
		t.Fatal("event was not persisted")
	}

	cancel()
	<-done
}

func TestAuditRecorder_KeepsProvidedIdentity(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	auditLog := marketmocks.NewMockAuditLog(ctrl)
	clock := marketmocks.NewMockClock(ctrl)

	event := domain.AuditEvent{
		ID:        uuid.New(),
		Type:      domain.AuditUserRecharge,
		UserID:    3,
		CreatedAt: testNow.Add(-time.Hour),
	}
	auditLog.EXPECT().Append(gomock.Any(), event).Return(nil)

	recorder := NewAuditRecorder(auditLog, clock, logging.DiscardLogger, 1)
	recorder.Record(t.Context(), event)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	recorder.Run(ctx)
}

func TestAuditRecorder_DropsWhenBufferIsFull(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	auditLog := marketmocks.NewMockAuditLog(ctrl)
	clock := marketmocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()

	auditLog.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event domain.AuditEvent) error {
			assert.Equal(t, domain.AuditOrderCreate, event.Type)
			return nil
		}).
		Times(1)

	recorder := NewAuditRecorder(auditLog, clock, logging.DiscardLogger, 1)
	recorder.Record(t.Context(), domain.AuditEvent{Type: domain.AuditOrderCreate, UserID: 1})
	recorder.Record(t.Context(), domain.AuditEvent{Type: domain.AuditOrderCancel, UserID: 1})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	recorder.Run(ctx)
}

func TestAuditRecorder_AppendFailureIsSwallowed(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	auditLog := marketmocks.NewMockAuditLog(ctrl)
	clock := marketmocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()

	auditLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(2)

	recorder := NewAuditRecorder(auditLog, clock, logging.DiscardLogger, 2)
	recorder.Record(t.Context(), domain.AuditEvent{Type: domain.AuditUserDelete, UserID: 5})
	recorder.Record(t.Context(), domain.AuditEvent{Type: domain.AuditItemPublish})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	assert.NotPanics(t, func() { recorder.Run(ctx) })
}
