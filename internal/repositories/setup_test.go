package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-stream-queue/internal/database"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a Postgres container and applies the embedded migrations.
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	logger.Initialize("debug", logger.FileOptions{})
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)

	require.NoError(t, database.Migrate(db.DB))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// insertUser creates a credentials user and returns its id.
func insertUser(t *testing.T, db *sqlx.DB, email string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.Get(&id, `INSERT INTO users (email, provider) VALUES ($1, 'Credentials') RETURNING id`, email)
	require.NoError(t, err)
	return id
}

// insertStream creates an entry with an explicit creation time and returns its id.
func insertStream(t *testing.T, db *sqlx.DB, creatorID, addedBy uuid.UUID, extractedID string, createdAt time.Time) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.Get(&id, `
		INSERT INTO streams (user_id, added_by, url, extracted_id, title, small_img, big_img, created_at)
		VALUES ($1, $2, $3, $4, $5, 'img', 'img', $6)
		RETURNING id`,
		creatorID, addedBy, "https://youtu.be/"+extractedID, extractedID, "title "+extractedID, createdAt)
	require.NoError(t, err)
	return id
}

// insertVotes adds one vote per new voter for the stream.
func insertVotes(t *testing.T, db *sqlx.DB, streamID uuid.UUID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		voter := insertUser(t, db, fmt.Sprintf("voter-%s@example.com", uuid.NewString()))
		_, err := db.Exec(`INSERT INTO upvotes (user_id, stream_id) VALUES ($1, $2)`, voter, streamID)
		require.NoError(t, err)
	}
}
