package testutil

import (
	"net/http"
	"time"

	"dematkyc/pkg/requestcontext"
)

// WithOperator adds an operator ID and bearer token to the request context.
// This simulates what the auth middleware does for authenticated requests.
func WithOperator(req *http.Request, operatorID, token string) *http.Request {
	ctx := requestcontext.WithOperatorID(req.Context(), operatorID)
	ctx = requestcontext.WithAuthToken(ctx, token)
	return req.WithContext(ctx)
}

// WithTime pins the request-scoped clock.
func WithTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
