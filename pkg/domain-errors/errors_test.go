package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	t.Run("matches outer code", func(t *testing.T) {
		err := New(CodeValidation, "bad form")
		assert.True(t, HasCode(err, CodeValidation))
		assert.True(t, Is(err, CodeValidation))
	})

	t.Run("matches nested code through fmt wrapping", func(t *testing.T) {
		inner := New(CodeUnauthorized, "token invalid")
		outer := Wrap(fmt.Errorf("load: %w", inner), CodeInternal, "failed to load")
		assert.True(t, HasCode(outer, CodeUnauthorized))
		assert.False(t, Is(outer, CodeUnauthorized))
		assert.True(t, Is(outer, CodeInternal))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.False(t, HasCode(nil, CodeInternal))
	})
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeUpstreamUnavailable, "brokerage unavailable")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "brokerage unavailable")
	assert.Contains(t, err.Error(), "connection refused")
}
