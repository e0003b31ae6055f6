package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DeclinedRepo maintains the (user_id, declined_user_id) side-table that
// suppresses a rejected sender from the receiver's future candidate lists.
type DeclinedRepo struct {
	pool *pgxpool.Pool
}

func NewDeclinedRepo(pool *pgxpool.Pool) *DeclinedRepo {
	return &DeclinedRepo{pool: pool}
}

func (r *DeclinedRepo) Upsert(ctx context.Context, tx pgx.Tx, userID, declinedUserID int64) error {
	if userID <= 0 || declinedUserID <= 0 || userID == declinedUserID {
		return fmt.Errorf("invalid declined payload")
	}
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO declined_profiles (
	user_id,
	declined_user_id,
	created_at
) VALUES ($1, $2, NOW())
ON CONFLICT (user_id, declined_user_id) DO NOTHING
`, userID, declinedUserID); err != nil {
		return fmt.Errorf("upsert declined profile: %w", err)
	}

	return nil
}

func (r *DeclinedRepo) Delete(ctx context.Context, tx pgx.Tx, userID, declinedUserID int64) error {
	if userID <= 0 || declinedUserID <= 0 {
		return fmt.Errorf("invalid declined delete payload")
	}
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	if _, err := tx.Exec(ctx, `
DELETE FROM declined_profiles
WHERE user_id = $1 AND declined_user_id = $2
`, userID, declinedUserID); err != nil {
		return fmt.Errorf("delete declined profile: %w", err)
	}

	return nil
}

func (r *DeclinedRepo) Exists(ctx context.Context, userID, declinedUserID int64) (bool, error) {
	if userID <= 0 || declinedUserID <= 0 {
		return false, fmt.Errorf("invalid declined lookup payload")
	}
	if r.pool == nil {
		return false, nil
	}

	var one int
	err := r.pool.QueryRow(ctx, `
SELECT 1
FROM declined_profiles
WHERE user_id = $1 AND declined_user_id = $2
LIMIT 1
`, userID, declinedUserID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup declined profile: %w", err)
	}

	return true, nil
}
