package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-stream-queue/internal/database"
)

// UpvoteRepository stores (user, stream) vote rows. A row's existence is the vote.
type UpvoteRepository struct {
	db *sqlx.DB
}

func NewUpvoteRepository(db *sqlx.DB) *UpvoteRepository {
	return &UpvoteRepository{db: db}
}

// Create adds the vote. It reports false when the vote already existed.
// Returns ErrNotFound when the stream does not exist.
func (r *UpvoteRepository) Create(ctx context.Context, userID, streamID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO upvotes (user_id, stream_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, stream_id) DO NOTHING
	`
	args := []any{userID, streamID}

	res, err := database.Executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, translate(err)
	}
	return rowsAffected > 0, nil
}

// Delete removes the vote. It reports whether a vote was removed.
func (r *UpvoteRepository) Delete(ctx context.Context, userID, streamID uuid.UUID) (bool, error) {
	const query = `DELETE FROM upvotes WHERE user_id = $1 AND stream_id = $2`
	args := []any{userID, streamID}

	res, err := database.Executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
