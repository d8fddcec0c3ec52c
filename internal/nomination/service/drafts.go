package service

import (
	"context"
	"errors"

	"dematkyc/internal/audit"
	"dematkyc/internal/nomination/models"
	"dematkyc/internal/nomination/rules"
	dErrors "dematkyc/pkg/domain-errors"
	"dematkyc/pkg/platform/sentinel"
	"dematkyc/pkg/requestcontext"
)

// SaveDraft stores an unfinished form. Drafts are not validated.
func (s *Service) SaveDraft(ctx context.Context, accountID string, sub models.Submission) (models.Draft, error) {
	if accountID == "" {
		return models.Draft{}, dErrors.New(dErrors.CodeBadRequest, "account id is required")
	}
	draft := models.Draft{
		AccountID:  accountID,
		OperatorID: requestcontext.OperatorID(ctx),
		Submission: sub.Clone(),
		SavedAt:    requestcontext.Now(ctx),
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return models.Draft{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save draft")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionDraftSaved, AccountID: accountID})
	return draft, nil
}

// LoadDraft returns the saved draft with derived state re-established.
func (s *Service) LoadDraft(ctx context.Context, accountID string) (*models.Draft, error) {
	draft, err := s.drafts.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementDraftLookup(false)
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "draft not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load draft")
	}
	s.metrics.IncrementDraftLookup(true)
	draft.Submission = rules.Derive(draft.Submission, requestcontext.Now(ctx))
	return draft, nil
}

// DeleteDraft discards the saved draft.
func (s *Service) DeleteDraft(ctx context.Context, accountID string) error {
	if err := s.drafts.Delete(ctx, accountID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeNotFound, "draft not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete draft")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionDraftDeleted, AccountID: accountID})
	return nil
}
