package service

import (
	"context"

	"dematkyc/internal/audit"
	"dematkyc/internal/brokerage"
	"dematkyc/internal/nomination/models"
	"dematkyc/internal/nomination/payload"
)

// Brokerage is the backend that owns profiles and nomination records.
// *brokerage.Client satisfies it.
type Brokerage interface {
	Profile(ctx context.Context, accountID string) (payload.Profile, error)
	FetchNominees(ctx context.Context, accountID string) ([]payload.NomineeRecord, error)
	FetchPOAs(ctx context.Context, accountID string) ([]payload.POARecord, error)
	FetchHolders(ctx context.Context, accountID string) ([]payload.HolderRecord, error)
	SubmitNominees(ctx context.Context, accountID string, records []payload.NomineeRecord) ([]brokerage.RecordStatus, error)
	SubmitPOAs(ctx context.Context, accountID string, records []payload.POARecord) ([]brokerage.RecordStatus, error)
	SubmitHolders(ctx context.Context, accountID string, records []payload.HolderRecord) ([]brokerage.RecordStatus, error)
}

// DraftStore keeps unfinished forms per account.
type DraftStore interface {
	Save(ctx context.Context, draft models.Draft) error
	Get(ctx context.Context, accountID string) (*models.Draft, error)
	Delete(ctx context.Context, accountID string) error
}

// SubmissionLog records every submit attempt.
type SubmissionLog interface {
	Append(ctx context.Context, rec models.SubmissionRecord) error
	ListByAccount(ctx context.Context, accountID string, limit int) ([]models.SubmissionRecord, error)
}

// AuditPublisher emits audit events. *audit.Publisher satisfies it.
type AuditPublisher interface {
	Emit(ctx context.Context, ev audit.Event) error
}
