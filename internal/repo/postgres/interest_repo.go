package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInterestNotFound = errors.New("interest not found")
	ErrInterestExists   = errors.New("interest already exists")
)

type InterestRepo struct {
	pool *pgxpool.Pool
}

func NewInterestRepo(pool *pgxpool.Pool) *InterestRepo {
	return &InterestRepo{pool: pool}
}

type InterestRecord struct {
	ID         int64
	SenderID   int64
	ReceiverID int64
	Status     string
	Message    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InterestListRecord is one row of an incoming/outgoing listing, joined
// with the other side's public profile card.
type InterestListRecord struct {
	ID          int64
	OtherUserID int64
	DisplayName string
	Location    string
	Status      string
	Message     string
	CreatedAt   time.Time
}

// Create inserts a pending edge for the ordered pair. The unique constraint
// on (sender_id, receiver_id) makes duplicate sends race-safe: a second
// insert hits the conflict and reports ErrInterestExists regardless of the
// existing edge's status.
func (r *InterestRepo) Create(ctx context.Context, tx pgx.Tx, senderID, receiverID int64, message string) (InterestRecord, error) {
	if senderID <= 0 || receiverID <= 0 || senderID == receiverID {
		return InterestRecord{}, fmt.Errorf("invalid interest payload")
	}
	if tx == nil {
		return InterestRecord{}, fmt.Errorf("transaction is required")
	}

	rec := InterestRecord{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     "pending",
		Message:    strings.TrimSpace(message),
	}
	err := tx.QueryRow(ctx, `
INSERT INTO interests (
	sender_id,
	receiver_id,
	status,
	message,
	created_at,
	updated_at
) VALUES ($1, $2, 'pending', $3, NOW(), NOW())
ON CONFLICT (sender_id, receiver_id) DO NOTHING
RETURNING id, created_at, updated_at
`, senderID, receiverID, rec.Message).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return InterestRecord{}, ErrInterestExists
		}
		return InterestRecord{}, fmt.Errorf("create interest: %w", err)
	}

	return rec, nil
}

// GetByIDForUpdate loads an edge and locks its row for the duration of the
// transaction, serializing concurrent transitions on the same edge.
func (r *InterestRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (InterestRecord, error) {
	if id <= 0 {
		return InterestRecord{}, fmt.Errorf("invalid interest id")
	}
	if tx == nil {
		return InterestRecord{}, fmt.Errorf("transaction is required")
	}

	var rec InterestRecord
	err := tx.QueryRow(ctx, `
SELECT id, sender_id, receiver_id, status, COALESCE(message, ''), created_at, updated_at
FROM interests
WHERE id = $1
FOR UPDATE
`, id).Scan(
		&rec.ID,
		&rec.SenderID,
		&rec.ReceiverID,
		&rec.Status,
		&rec.Message,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return InterestRecord{}, ErrInterestNotFound
		}
		return InterestRecord{}, fmt.Errorf("get interest for update: %w", err)
	}

	return rec, nil
}

// GetBySenderReceiverForUpdate locks the edge for an ordered pair; used to
// pick up the reciprocal edge inside an accept transition.
func (r *InterestRepo) GetBySenderReceiverForUpdate(ctx context.Context, tx pgx.Tx, senderID, receiverID int64) (InterestRecord, error) {
	if senderID <= 0 || receiverID <= 0 {
		return InterestRecord{}, fmt.Errorf("invalid interest lookup payload")
	}
	if tx == nil {
		return InterestRecord{}, fmt.Errorf("transaction is required")
	}

	var rec InterestRecord
	err := tx.QueryRow(ctx, `
SELECT id, sender_id, receiver_id, status, COALESCE(message, ''), created_at, updated_at
FROM interests
WHERE sender_id = $1 AND receiver_id = $2
FOR UPDATE
`, senderID, receiverID).Scan(
		&rec.ID,
		&rec.SenderID,
		&rec.ReceiverID,
		&rec.Status,
		&rec.Message,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return InterestRecord{}, ErrInterestNotFound
		}
		return InterestRecord{}, fmt.Errorf("get reciprocal interest: %w", err)
	}

	return rec, nil
}

func (r *InterestRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status string) error {
	if id <= 0 || strings.TrimSpace(status) == "" {
		return fmt.Errorf("invalid interest status payload")
	}
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	result, err := tx.Exec(ctx, `
UPDATE interests
SET status = $2, updated_at = NOW()
WHERE id = $1
`, id, status)
	if err != nil {
		return fmt.Errorf("update interest status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrInterestNotFound
	}

	return nil
}

// HasAcceptedReciprocal is the single named mutuality query: an edge A->B is
// mutual exactly when B->A exists with status accepted. Both read paths
// (listing and the accept transition result) go through here so the
// derivation cannot drift.
func (r *InterestRepo) HasAcceptedReciprocal(ctx context.Context, senderID, receiverID int64) (bool, error) {
	if senderID <= 0 || receiverID <= 0 {
		return false, fmt.Errorf("invalid mutuality lookup payload")
	}
	if r.pool == nil {
		return false, nil
	}

	var one int
	err := r.pool.QueryRow(ctx, `
SELECT 1
FROM interests
WHERE sender_id = $1 AND receiver_id = $2 AND status = 'accepted'
LIMIT 1
`, receiverID, senderID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup accepted reciprocal: %w", err)
	}

	return true, nil
}

func (r *InterestRepo) ListIncoming(ctx context.Context, userID int64, limit int) ([]InterestListRecord, error) {
	return r.list(ctx, userID, limit, true)
}

func (r *InterestRepo) ListOutgoing(ctx context.Context, userID int64, limit int) ([]InterestListRecord, error) {
	return r.list(ctx, userID, limit, false)
}

func (r *InterestRepo) list(ctx context.Context, userID int64, limit int, incoming bool) ([]InterestListRecord, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if limit <= 0 {
		limit = 100
	}
	if r.pool == nil {
		return []InterestListRecord{}, nil
	}

	ownCol, otherCol := "receiver_id", "sender_id"
	if !incoming {
		ownCol, otherCol = "sender_id", "receiver_id"
	}

	query := fmt.Sprintf(`
SELECT
	i.id,
	i.%s,
	COALESCE(p.display_name, ''),
	COALESCE(p.location, ''),
	i.status,
	COALESCE(i.message, ''),
	i.created_at
FROM interests i
JOIN profiles p ON p.user_id = i.%s
WHERE i.%s = $1
ORDER BY i.created_at DESC, i.id DESC
LIMIT $2
`, otherCol, otherCol, ownCol)

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	defer rows.Close()

	items := make([]InterestListRecord, 0, limit)
	for rows.Next() {
		var rec InterestListRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.OtherUserID,
			&rec.DisplayName,
			&rec.Location,
			&rec.Status,
			&rec.Message,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan interest row: %w", err)
		}
		items = append(items, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate interests: %w", rows.Err())
	}

	return items, nil
}
