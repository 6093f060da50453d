package readstore

import (
	"context"
	"time"

	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(q db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: q}
}

func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	const query = `
		SELECT o.id, o.teacher_id, u.display_name, o.subject, o.description,
		       o.hourly_rate, o.is_active, o.created_at, o.updated_at
		FROM offers o
		JOIN users u ON u.id = o.teacher_id
		WHERE o.id = $1`

	var view queries.OfferView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.TeacherID, &view.TeacherDisplayName, &view.Subject, &view.Description,
		&view.HourlyRate, &view.IsActive, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, wrapReadErr("offer not found", err)
	}
	return &view, nil
}

func (r *OfferReadStore) FindActiveFirstPage(ctx context.Context, limit int32) ([]*queries.OfferListItem, error) {
	const query = `
		SELECT o.id, u.display_name, o.subject, o.hourly_rate, o.created_at
		FROM offers o
		JOIN users u ON u.id = o.teacher_id
		WHERE o.is_active = TRUE
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, wrapReadErr("failed to list active offers", err)
	}
	defer rows.Close()
	return scanOfferListItems(rows)
}

func (r *OfferReadStore) FindActiveKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OfferListItem, error) {
	const query = `
		SELECT o.id, u.display_name, o.subject, o.hourly_rate, o.created_at
		FROM offers o
		JOIN users u ON u.id = o.teacher_id
		WHERE o.is_active = TRUE
		  AND (o.created_at, o.id) < ($1, $2)
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, wrapReadErr("failed to list active offers keyset", err)
	}
	defer rows.Close()
	return scanOfferListItems(rows)
}

// FindAvailableSlots returns unbooked future slots ascending by start.
func (r *OfferReadStore) FindAvailableSlots(ctx context.Context, offerID uuid.UUID, after time.Time) ([]*queries.SlotView, error) {
	const query = `
		SELECT id, offer_id, start_time, end_time, booked, created_at
		FROM time_slots
		WHERE offer_id = $1 AND booked = FALSE AND start_time > $2
		ORDER BY start_time ASC`

	rows, err := r.db.Query(ctx, query, offerID, after)
	if err != nil {
		return nil, wrapReadErr("failed to list available slots", err)
	}
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		var v queries.SlotView
		if err := rows.Scan(&v.ID, &v.OfferID, &v.StartTime, &v.EndTime, &v.Booked, &v.CreatedAt); err != nil {
			return nil, wrapReadErr("failed to scan slot row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to read slot rows", err)
	}
	return result, nil
}

func scanOfferListItems(rows pgx.Rows) ([]*queries.OfferListItem, error) {
	var result []*queries.OfferListItem
	for rows.Next() {
		var item queries.OfferListItem
		if err := rows.Scan(&item.ID, &item.TeacherDisplayName, &item.Subject, &item.HourlyRate, &item.CreatedAt); err != nil {
			return nil, wrapReadErr("failed to scan offer row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to read offer rows", err)
	}
	return result, nil
}
