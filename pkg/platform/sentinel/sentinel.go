package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and outbound clients return
// these (optionally wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: entity does not exist in store
//   - ErrUnavailable: upstream or store temporarily unavailable
//   - ErrTokenInvalid: the brokerage backend rejected the caller's token
//   - ErrBadResponse: the brokerage backend answered with an unreadable body
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("unavailable")
	ErrTokenInvalid = errors.New("token invalid")
	ErrBadResponse  = errors.New("bad response")
)
