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

const userColumns = `id, email, name, password_hash, provider, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &user, query, email)
	logQuery(query, []any{email}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Exists reports whether a user with the given id exists.
func (r *UserReadRepository) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &exists, query, userID)
	logQuery(query, []any{userID}, exists, err)

	return exists, err
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a user. A concurrent sign-in with the same email gets the existing row back.
func (r *UserWriteRepository) Create(ctx context.Context, email string, name, passwordHash *string, provider string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (email, name, password_hash, provider, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING ` + userColumns
	args := []any{email, name, passwordHash != nil, provider}

	var user models.UserDB
	err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &user, query, email, name, passwordHash, provider)
	logQuery(query, args, user.UserID, err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetPasswordHash stores a new password hash for the user.
func (r *UserWriteRepository) SetPasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	res, err := database.Executor(ctx, r.db).ExecContext(ctx, query, userID, passwordHash)
	return checkAffected(query, []any{userID}, res, err)
}
