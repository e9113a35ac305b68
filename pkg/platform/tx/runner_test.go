package tx

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "benefitd/pkg/domain-errors"
)

func TestMutexRunner(t *testing.T) {
	t.Run("returns fn error unchanged", func(t *testing.T) {
		r := NewMutexRunner()
		want := errors.New("boom")
		err := r.RunInTx(context.Background(), func(context.Context) error { return want })
		assert.ErrorIs(t, err, want)
	})

	t.Run("cancelled context never runs fn", func(t *testing.T) {
		r := NewMutexRunner()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		called := false
		err := r.RunInTx(ctx, func(context.Context) error {
			called = true
			return nil
		})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout))
		assert.False(t, called)
	})

	t.Run("units never overlap", func(t *testing.T) {
		r := NewMutexRunner()
		var inside, overlaps atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = r.RunInTx(context.Background(), func(context.Context) error {
					if inside.Add(1) > 1 {
						overlaps.Add(1)
					}
					inside.Add(-1)
					return nil
				})
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(0), overlaps.Load())
	})

	t.Run("applies a deadline when the caller has none", func(t *testing.T) {
		r := NewMutexRunner()
		err := r.RunInTx(context.Background(), func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return nil
		})
		require.NoError(t, err)
	})
}

func TestExecutorSelection(t *testing.T) {
	db := &sql.DB{}

	t.Run("without a transaction the pool is used", func(t *testing.T) {
		ctx := context.Background()
		assert.False(t, InTx(ctx))
		assert.Same(t, db, Exec(ctx, db))
	})

	t.Run("nil transaction is ignored", func(t *testing.T) {
		ctx := WithTx(context.Background(), nil)
		assert.False(t, InTx(ctx))
	})

	t.Run("attached transaction wins", func(t *testing.T) {
		tx := &sql.Tx{}
		ctx := WithTx(context.Background(), tx)
		assert.True(t, InTx(ctx))
		assert.Same(t, tx, Exec(ctx, db))
	})
}
