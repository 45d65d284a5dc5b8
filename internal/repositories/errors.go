package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
)

var (
	// ErrNotFound is returned when a referenced row does not exist or is not owned by the caller.
	ErrNotFound = errors.New("not found")
	// ErrCacheMiss is returned when a cache key is absent.
	ErrCacheMiss = errors.New("cache miss")
)

const pgForeignKeyViolation = "23503"

// translate maps driver errors onto repository errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return ErrNotFound
	}
	return err
}

// logQuery logs a query on a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// checkAffected logs an exec and returns ErrNotFound when it touched no rows.
func checkAffected(query string, args []any, res sql.Result, err error) error {
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return translate(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
