package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-stream-queue/internal/database"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
)

// CurrentStreamRepository manages the per-creator "now playing" pointer.
type CurrentStreamRepository struct {
	db *sqlx.DB
}

func NewCurrentStreamRepository(db *sqlx.DB) *CurrentStreamRepository {
	return &CurrentStreamRepository{db: db}
}

// Lock takes a transaction-scoped advisory lock on the creator's queue.
// It must run inside a transaction; the lock is released on commit or rollback.
func (r *CurrentStreamRepository) Lock(ctx context.Context, creatorID uuid.UUID) error {
	const query = `SELECT pg_advisory_xact_lock(hashtextextended($1::TEXT, 0))`

	tx := database.TxFromContext(ctx)
	if tx == nil {
		return errors.New("advisory lock requires a transaction")
	}

	_, err := tx.ExecContext(ctx, query, creatorID.String())
	logQuery(query, []any{creatorID}, "locked", err)

	return err
}

// Get returns the creator's pointer with its entry, or nil when nothing is playing.
func (r *CurrentStreamRepository) Get(ctx context.Context, creatorID uuid.UUID) (*models.CurrentStream, error) {
	query := `
		SELECT ` + streamColumns + `
		FROM current_streams c
		JOIN streams s ON s.id = c.stream_id
		WHERE c.user_id = $1
	`

	var stream models.StreamDB
	err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &stream, query, creatorID)
	logQuery(query, []any{creatorID}, stream.StreamID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.CurrentStream{
		UserID:   creatorID,
		StreamID: stream.StreamID,
		Stream:   &stream,
	}, nil
}

// Upsert points the creator's pointer at streamID.
// Returns ErrNotFound when the stream does not belong to the creator.
func (r *CurrentStreamRepository) Upsert(ctx context.Context, creatorID, streamID uuid.UUID) error {
	const query = `
		INSERT INTO current_streams (user_id, stream_id, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET stream_id = EXCLUDED.stream_id, updated_at = NOW()
	`
	args := []any{creatorID, streamID}

	res, err := database.Executor(ctx, r.db).ExecContext(ctx, query, args...)
	return checkAffected(query, args, res, err)
}

// Delete removes the creator's pointer if any.
func (r *CurrentStreamRepository) Delete(ctx context.Context, creatorID uuid.UUID) error {
	const query = `DELETE FROM current_streams WHERE user_id = $1`

	res, err := database.Executor(ctx, r.db).ExecContext(ctx, query, creatorID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{creatorID}, rowsAffected, err)

	return err
}
