package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"dematkyc/internal/brokerage"
)

// describe renders a section failure for the result without leaking backend
// bodies.
func describe(err error) string {
	if cat := brokerage.CategoryOf(err); cat != "" {
		return string(cat)
	}
	switch {
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return string(brokerage.ErrorTimeout)
	}
	return "unexpected error"
}

func newID() string { return uuid.NewString() }
