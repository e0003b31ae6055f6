package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laksanil/vivaahready/internal/domain/enums"
	"github.com/laksanil/vivaahready/internal/domain/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepo struct {
	pool *pgxpool.Pool
}

func NewNotificationRepo(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

func (r *NotificationRepo) Insert(ctx context.Context, n model.Notification) (model.Notification, error) {
	if n.UserID <= 0 || n.Kind == "" {
		return model.Notification{}, fmt.Errorf("invalid notification payload")
	}
	if r.pool == nil {
		return n, nil
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	err := r.pool.QueryRow(ctx, `
INSERT INTO notifications (
	id,
	user_id,
	kind,
	title,
	body,
	read,
	created_at
) VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
RETURNING created_at
`, n.ID, n.UserID, string(n.Kind), n.Title, n.Body).Scan(&n.CreatedAt)
	if err != nil {
		return model.Notification{}, fmt.Errorf("insert notification: %w", err)
	}

	return n, nil
}

func (r *NotificationRepo) ListRecent(ctx context.Context, userID int64, limit int) ([]model.Notification, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if limit <= 0 {
		limit = 50
	}
	if r.pool == nil {
		return []model.Notification{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, kind, COALESCE(title, ''), COALESCE(body, ''), read, created_at
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	items := make([]model.Notification, 0, limit)
	for rows.Next() {
		var n model.Notification
		var kind string
		var createdAt time.Time
		if err := rows.Scan(&n.ID, &n.UserID, &kind, &n.Title, &n.Body, &n.Read, &createdAt); err != nil {
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		n.Kind = enums.NotificationKind(kind)
		n.CreatedAt = createdAt
		items = append(items, n)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate notifications: %w", rows.Err())
	}

	return items, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, userID int64, id string) error {
	if userID <= 0 || id == "" {
		return fmt.Errorf("invalid mark read payload")
	}
	if r.pool == nil {
		return nil
	}

	result, err := r.pool.Exec(ctx, `
UPDATE notifications
SET read = TRUE
WHERE id = $1 AND user_id = $2
`, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("mark notification read: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
