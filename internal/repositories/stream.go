package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-stream-queue/internal/database"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
)

const streamColumns = `s.id, s.user_id, s.added_by, s.type, s.url, s.extracted_id, s.title,
	s.small_img, s.big_img, s.played, s.played_ts, s.created_at`

// StreamReadRepository reads queue entries and their vote annotations.
type StreamReadRepository struct {
	db *sqlx.DB
}

func NewStreamReadRepository(db *sqlx.DB) *StreamReadRepository {
	return &StreamReadRepository{db: db}
}

// ListRanked returns the creator's entries with vote counts and the viewer's vote flag,
// ordered by votes descending then insertion time. Played entries are skipped unless includePlayed is set.
func (r *StreamReadRepository) ListRanked(ctx context.Context, creatorID, viewerID uuid.UUID, includePlayed bool) ([]models.RankedStream, error) {
	query := `
		SELECT ` + streamColumns + `,
			COUNT(u.id) AS upvotes,
			COALESCE(BOOL_OR(u.user_id = $2), FALSE) AS has_upvoted
		FROM streams s
		LEFT JOIN upvotes u ON u.stream_id = s.id
		WHERE s.user_id = $1 AND ($3::BOOLEAN OR s.played = FALSE)
		GROUP BY s.id
		ORDER BY upvotes DESC, s.created_at ASC, s.id ASC
	`
	args := []any{creatorID, viewerID, includePlayed}

	streams := []models.RankedStream{}
	err := sqlx.SelectContext(ctx, database.Executor(ctx, r.db), &streams, query, args...)
	logQuery(query, args, len(streams), err)

	return streams, err
}

// NextCandidate returns the highest ranked unplayed entry of the creator, or nil if the queue is empty.
func (r *StreamReadRepository) NextCandidate(ctx context.Context, creatorID uuid.UUID) (*models.StreamDB, error) {
	query := `
		SELECT ` + streamColumns + `
		FROM streams s
		LEFT JOIN upvotes u ON u.stream_id = s.id
		WHERE s.user_id = $1 AND s.played = FALSE
		GROUP BY s.id
		ORDER BY COUNT(u.id) DESC, s.created_at ASC, s.id ASC
		LIMIT 1
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
	return &stream, nil
}

// GetByOwner returns an entry only if it belongs to ownerID.
func (r *StreamReadRepository) GetByOwner(ctx context.Context, ownerID, streamID uuid.UUID) (*models.StreamDB, error) {
	query := `SELECT ` + streamColumns + ` FROM streams s WHERE s.id = $1 AND s.user_id = $2`

	var stream models.StreamDB
	err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &stream, query, streamID, ownerID)
	logQuery(query, []any{streamID, ownerID}, stream.StreamID, err)

	if err != nil {
		return nil, translate(err)
	}
	return &stream, nil
}

// HasRecent reports whether the video was added to the creator's queue at or after since.
func (r *StreamReadRepository) HasRecent(ctx context.Context, creatorID uuid.UUID, extractedID string, since time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM streams
			WHERE user_id = $1 AND extracted_id = $2 AND created_at >= $3
		)
	`
	args := []any{creatorID, extractedID, since}

	var exists bool
	err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &exists, query, args...)
	logQuery(query, args, exists, err)

	return exists, err
}

// CountByCreator returns the number of entries, played or not, in the creator's queue.
func (r *StreamReadRepository) CountByCreator(ctx context.Context, creatorID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM streams WHERE user_id = $1`

	var count int
	err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &count, query, creatorID)
	logQuery(query, []any{creatorID}, count, err)

	return count, err
}

// StreamWriteRepository mutates queue entries.
type StreamWriteRepository struct {
	db *sqlx.DB
}

func NewStreamWriteRepository(db *sqlx.DB) *StreamWriteRepository {
	return &StreamWriteRepository{db: db}
}

// Save inserts a new unplayed entry and returns the stored row.
func (r *StreamWriteRepository) Save(ctx context.Context, stream models.StreamDB) (*models.StreamDB, error) {
	const query = `
		INSERT INTO streams (user_id, added_by, type, url, extracted_id, title, small_img, big_img, played, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, NOW())
		RETURNING id, user_id, added_by, type, url, extracted_id, title, small_img, big_img, played, played_ts, created_at
	`
	args := []any{
		stream.UserID, stream.AddedBy, stream.Type, stream.URL,
		stream.ExtractedID, stream.Title, stream.SmallImg, stream.BigImg,
	}

	var saved models.StreamDB
	err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &saved, query, args...)
	logQuery(query, args, saved.StreamID, err)

	if err != nil {
		return nil, translate(err)
	}
	return &saved, nil
}

// MarkPlayed flags the owner's entry as played at ts.
func (r *StreamWriteRepository) MarkPlayed(ctx context.Context, ownerID, streamID uuid.UUID, ts time.Time) error {
	const query = `UPDATE streams SET played = TRUE, played_ts = $3 WHERE id = $1 AND user_id = $2`
	args := []any{streamID, ownerID, ts}

	res, err := database.Executor(ctx, r.db).ExecContext(ctx, query, args...)
	return checkAffected(query, args, res, err)
}

// Delete removes the owner's entry. Votes and a pointer to it cascade.
func (r *StreamWriteRepository) Delete(ctx context.Context, ownerID, streamID uuid.UUID) error {
	const query = `DELETE FROM streams WHERE id = $1 AND user_id = $2`
	args := []any{streamID, ownerID}

	res, err := database.Executor(ctx, r.db).ExecContext(ctx, query, args...)
	return checkAffected(query, args, res, err)
}
