package audit

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dematkyc/pkg/requestcontext"
)

func TestHasher(t *testing.T) {
	h, err := NewHasher([]byte("audit-key"))
	require.NoError(t, err)

	t.Run("deterministic and case-insensitive", func(t *testing.T) {
		a := h.Hash("abcde1234f")
		b := h.Hash(" ABCDE1234F ")
		assert.Equal(t, a, b)
		assert.Len(t, a, 64)
		assert.NotContains(t, a, "ABCDE")
	})

	t.Run("key changes the digest", func(t *testing.T) {
		other, err := NewHasher([]byte("another-key"))
		require.NoError(t, err)
		assert.NotEqual(t, h.Hash("ABCDE1234F"), other.Hash("ABCDE1234F"))
	})

	t.Run("empty value yields no digest", func(t *testing.T) {
		assert.Empty(t, h.Hash("  "))
		assert.Len(t, h.HashAll("ABCDE1234F", "", "PQRST6789Z"), 2)
	})

	t.Run("oversized key rejected", func(t *testing.T) {
		_, err := NewHasher([]byte(strings.Repeat("k", 65)))
		assert.Error(t, err)
	})
}

func TestDescribeClient(t *testing.T) {
	desktop := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	mobile := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"

	got := DescribeClient(desktop)
	assert.True(t, strings.HasPrefix(got, "Chrome 120.0.0.0 on "), got)
	assert.NotContains(t, got, "(mobile)")

	assert.Contains(t, DescribeClient(mobile), "(mobile)")
	assert.Empty(t, DescribeClient(""))
}

func TestEnrich(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)
	ctx = requestcontext.WithOperatorID(ctx, "op-7")
	ctx = requestcontext.WithRequestID(ctx, "req-1")
	ctx = requestcontext.WithClientMetadata(ctx, "10.0.0.1", "")

	ev := Enrich(ctx, Event{Action: ActionTokenRejected, AccountID: "ACC1"})

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, now, ev.Timestamp)
	assert.Equal(t, CategorySecurity, ev.Category)
	assert.Equal(t, "op-7", ev.OperatorID)
	assert.Equal(t, "req-1", ev.RequestID)
	assert.Equal(t, "10.0.0.1", ev.ClientIP)

	t.Run("explicit fields win", func(t *testing.T) {
		ev := Enrich(ctx, Event{ID: "fixed", Action: ActionSubmitted, OperatorID: "op-1"})
		assert.Equal(t, "fixed", ev.ID)
		assert.Equal(t, "op-1", ev.OperatorID)
		assert.Equal(t, CategoryCompliance, ev.Category)
	})
}

func TestActionCategoryDefaultsToOperations(t *testing.T) {
	assert.Equal(t, CategoryOperations, Action("something_else").Category())
	assert.Equal(t, CategoryCompliance, ActionPartiallyPersisted.Category())
}
