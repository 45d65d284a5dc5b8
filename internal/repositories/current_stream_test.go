package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentStreamRepository(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	creator := insertUser(t, db, "creator@example.com")
	other := insertUser(t, db, "other@example.com")
	first := insertStream(t, db, creator, creator, "aaaaaaaaaaa", time.Now())
	second := insertStream(t, db, creator, creator, "bbbbbbbbbbb", time.Now())
	foreign := insertStream(t, db, other, other, "ccccccccccc", time.Now())

	repo := NewCurrentStreamRepository(db)

	current, err := repo.Get(ctx, creator)
	assert.NoError(t, err)
	assert.Nil(t, current)

	assert.NoError(t, repo.Upsert(ctx, creator, first))
	assert.NoError(t, repo.Upsert(ctx, creator, second))

	var rows int
	assert.NoError(t, db.Get(&rows, `SELECT COUNT(*) FROM current_streams WHERE user_id = $1`, creator))
	assert.Equal(t, 1, rows, "at most one pointer per creator")

	current, err = repo.Get(ctx, creator)
	assert.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second, current.StreamID)
	assert.Equal(t, "bbbbbbbbbbb", current.Stream.ExtractedID)

	t.Run("ForeignStreamRejected", func(t *testing.T) {
		assert.ErrorIs(t, repo.Upsert(ctx, creator, foreign), ErrNotFound)
	})

	t.Run("RemovingCurrentStreamDropsPointer", func(t *testing.T) {
		assert.NoError(t, NewStreamWriteRepository(db).Delete(ctx, creator, second))

		current, err := repo.Get(ctx, creator)
		assert.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.NoError(t, repo.Upsert(ctx, creator, first))
		assert.NoError(t, repo.Delete(ctx, creator))
		assert.NoError(t, repo.Delete(ctx, creator))

		current, err := repo.Get(ctx, creator)
		assert.NoError(t, err)
		assert.Nil(t, current)
	})
}

func TestCurrentStreamRepository_Lock(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	creator := uuid.New()
	repo := NewCurrentStreamRepository(db)
	transactor := database.NewTransactor(db)

	assert.Error(t, repo.Lock(context.Background(), creator), "lock outside a transaction")

	var (
		mu     sync.Mutex
		inside int
		maxIn  int
		wg     sync.WaitGroup
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := transactor.WithinTx(context.Background(), func(ctx context.Context) error {
				if err := repo.Lock(ctx, creator); err != nil {
					return err
				}
				mu.Lock()
				inside++
				if inside > maxIn {
					maxIn = inside
				}
				mu.Unlock()

				time.Sleep(50 * time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxIn, "advisory lock serializes transactions per creator")
}
