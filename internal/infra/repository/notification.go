package repository

import (
	"context"

	"tutorlink/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// CreateJob writes an outbox row in the caller's transaction. The
// external dispatcher drains the table; nothing here sends anything.
func (r *NotificationRepository) CreateJob(ctx context.Context, q db.DBTX, kind, topic string, recipientID uuid.UUID, payload []byte) error {
	const query = `
		INSERT INTO notification_jobs (kind, topic, recipient_id, payload)
		VALUES ($1, $2, $3, $4)`

	if _, err := q.Exec(ctx, query, kind, topic, recipientID, payload); err != nil {
		return wrapErr("failed to create notification job", err)
	}
	return nil
}
