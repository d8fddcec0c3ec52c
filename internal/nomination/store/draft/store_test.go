package draft

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dematkyc/internal/nomination/models"
	"dematkyc/pkg/platform/sentinel"
	"dematkyc/pkg/requestcontext"
)

type store interface {
	Save(ctx context.Context, d models.Draft) error
	Get(ctx context.Context, accountID string) (*models.Draft, error)
	Delete(ctx context.Context, accountID string) error
}

func sampleDraft() models.Draft {
	return models.Draft{
		AccountID:  "ACC1",
		OperatorID: "op-1",
		SavedAt:    time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
		Submission: models.Submission{
			WishToNominate: models.Yes,
			Nominees:       []models.Nominee{{Name: "Ravi", PercentageShares: 100, Guardian: &models.Guardian{Name: "Lakshmi"}}},
		},
	}
}

func exerciseStore(t *testing.T, s store) {
	ctx := context.Background()

	_, err := s.Get(ctx, "ACC1")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, s.Save(ctx, sampleDraft()))

	got, err := s.Get(ctx, "ACC1")
	require.NoError(t, err)
	assert.Equal(t, "op-1", got.OperatorID)
	require.Len(t, got.Submission.Nominees, 1)
	assert.Equal(t, "Lakshmi", got.Submission.Nominees[0].Guardian.Name)

	require.NoError(t, s.Delete(ctx, "ACC1"))
	assert.ErrorIs(t, s.Delete(ctx, "ACC1"), sentinel.ErrNotFound)
	_, err = s.Get(ctx, "ACC1")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestInMemoryStore(t *testing.T) {
	exerciseStore(t, NewInMemory(time.Hour))

	t.Run("stored draft is isolated from caller", func(t *testing.T) {
		s := NewInMemory(time.Hour)
		d := sampleDraft()
		require.NoError(t, s.Save(context.Background(), d))
		d.Submission.Nominees[0].Guardian.Name = "changed"

		got, err := s.Get(context.Background(), "ACC1")
		require.NoError(t, err)
		assert.Equal(t, "Lakshmi", got.Submission.Nominees[0].Guardian.Name)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		s := NewInMemory(time.Hour)
		start := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
		require.NoError(t, s.Save(requestcontext.WithTime(context.Background(), start), sampleDraft()))

		_, err := s.Get(requestcontext.WithTime(context.Background(), start.Add(59*time.Minute)), "ACC1")
		assert.NoError(t, err)
		_, err = s.Get(requestcontext.WithTime(context.Background(), start.Add(time.Hour)), "ACC1")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	exerciseStore(t, NewRedis(client, time.Hour))

	t.Run("save sets ttl", func(t *testing.T) {
		s := NewRedis(client, 2*time.Hour)
		require.NoError(t, s.Save(context.Background(), sampleDraft()))
		assert.Equal(t, 2*time.Hour, mr.TTL(draftKeyPrefix+"ACC1"))

		mr.FastForward(2 * time.Hour)
		_, err := s.Get(context.Background(), "ACC1")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("corrupt payload surfaces an error", func(t *testing.T) {
		require.NoError(t, mr.Set(draftKeyPrefix+"BAD", "{not json"))
		_, err := NewRedis(client, time.Hour).Get(context.Background(), "BAD")
		require.Error(t, err)
		assert.NotErrorIs(t, err, sentinel.ErrNotFound)
	})
}
