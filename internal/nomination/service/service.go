// Package service orchestrates the nomination form: loading an account's
// existing records, applying form events, validating, and submitting the
// three record sets to the brokerage backend.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"dematkyc/internal/audit"
	"dematkyc/internal/brokerage"
	"dematkyc/internal/nomination/metrics"
	"dematkyc/internal/nomination/models"
	"dematkyc/internal/nomination/payload"
	"dematkyc/internal/nomination/rules"
	"dematkyc/internal/nomination/validation"
	dErrors "dematkyc/pkg/domain-errors"
	"dematkyc/pkg/platform/sentinel"
	"dematkyc/pkg/requestcontext"
)

const defaultHistoryLimit = 20

// Service implements the nomination use cases.
type Service struct {
	backend     Brokerage
	validator   *validation.Validator
	drafts      DraftStore
	submissions SubmissionLog
	auditor     AuditPublisher
	hasher      *audit.Hasher
	metrics     *metrics.Metrics
	logger      *slog.Logger
	tracer      trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithAuditor sets the audit publisher. Without one no events are emitted.
func WithAuditor(a AuditPublisher) Option {
	return func(s *Service) { s.auditor = a }
}

// WithHasher sets the hasher used to digest PANs in audit events.
func WithHasher(h *audit.Hasher) Option {
	return func(s *Service) { s.hasher = h }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New creates a Service.
func New(backend Brokerage, drafts DraftStore, submissions SubmissionLog, opts ...Option) (*Service, error) {
	if backend == nil {
		return nil, errors.New("brokerage backend is required")
	}
	if drafts == nil {
		return nil, errors.New("draft store is required")
	}
	if submissions == nil {
		return nil, errors.New("submission log is required")
	}
	v, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("create validator: %w", err)
	}
	s := &Service{
		backend:     backend,
		validator:   v,
		drafts:      drafts,
		submissions: submissions,
		logger:      slog.Default(),
		tracer:      otel.Tracer("dematkyc/nomination"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Load builds the editable form for an account from its profile and the
// records already held by the backend. The four reads run in parallel; a
// rejected token aborts the others.
func (s *Service) Load(ctx context.Context, accountID string) (models.Submission, error) {
	if accountID == "" {
		return models.Submission{}, dErrors.New(dErrors.CodeBadRequest, "account id is required")
	}

	var (
		profile  payload.Profile
		nominees []payload.NomineeRecord
		poas     []payload.POARecord
		holders  []payload.HolderRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.backend.Profile(gctx, accountID)
		profile = p
		return err
	})
	g.Go(func() error {
		recs, err := s.backend.FetchNominees(gctx, accountID)
		nominees = recs
		return emptyOnNotFound(err)
	})
	g.Go(func() error {
		recs, err := s.backend.FetchPOAs(gctx, accountID)
		poas = recs
		return emptyOnNotFound(err)
	})
	g.Go(func() error {
		recs, err := s.backend.FetchHolders(gctx, accountID)
		holders = recs
		return emptyOnNotFound(err)
	})
	if err := g.Wait(); err != nil {
		return models.Submission{}, s.translate(ctx, accountID, err, "load nomination")
	}

	sub := payload.FromBackend(profile, nominees, poas, holders)
	return rules.Derive(sub, requestcontext.Now(ctx)), nil
}

// Validate returns every field error in the submission and counts the run.
func (s *Service) Validate(ctx context.Context, sub models.Submission) validation.ErrorList {
	errs := s.validator.Validate(ctx, sub)
	s.metrics.IncrementValidation(!errs.HasErrors())
	return errs
}

// Check is Validate without the metric, for rendering form state after a load
// or an event.
func (s *Service) Check(ctx context.Context, sub models.Submission) validation.ErrorList {
	return s.validator.Validate(ctx, sub)
}

// Apply applies one form event at the request's time.
func (s *Service) Apply(ctx context.Context, sub models.Submission, ev rules.Event) (models.Submission, error) {
	return rules.Apply(sub, ev, requestcontext.Now(ctx))
}

// Shares previews the redistributed split for count nominees.
func (s *Service) Shares(count int) ([]int, error) {
	if count < 1 || count > models.MaxNominees {
		return nil, dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("count must be between 1 and %d", models.MaxNominees))
	}
	return rules.SplitShares(count), nil
}

// Submit validates sub and writes the nominee, POA and holder records to the
// backend in parallel.
//
// A rejected token cancels the remaining calls and returns
// CodeUnauthorized. Any other failure is recorded on its section's Outcome;
// if any record in any section failed, the full result is returned together
// with CodeSubmissionFailed. Sections that did persist are not rolled back.
func (s *Service) Submit(ctx context.Context, accountID string, sub models.Submission) (*SubmitResult, error) {
	ctx, span := s.tracer.Start(ctx, "nomination.submit",
		trace.WithAttributes(attribute.String("account.id", accountID)),
	)
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.ObserveSubmitLatency(time.Since(start)) }()

	if accountID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "account id is required")
	}

	sub = validation.Normalize(sub)
	if errs := s.Validate(ctx, sub); errs.HasErrors() {
		span.SetStatus(codes.Error, "validation")
		s.emit(ctx, audit.Event{
			Action:    audit.ActionValidationRejected,
			AccountID: accountID,
			Reason:    fmt.Sprintf("%d field errors", len(errs)),
		})
		return nil, dErrors.Wrap(errs, dErrors.CodeValidation, "submission has validation errors")
	}

	now := requestcontext.Now(ctx)
	nominees := payload.ToNomineeRecords(sub, now)
	poas := payload.ToPOARecords(sub)
	holders := payload.ToHolderRecords(sub)

	result := &SubmitResult{
		SubmissionID: newID(),
		AccountID:    accountID,
		Nominees:     Outcome{Section: models.SectionNominees, Attempted: len(nominees)},
		POAs:         Outcome{Section: models.SectionPOAs, Attempted: len(poas)},
		Holders:      Outcome{Section: models.SectionHolders, Attempted: len(holders)},
	}
	span.SetAttributes(attribute.String("submission.id", result.SubmissionID))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.backend.SubmitNominees(gctx, accountID, nominees)
		return settle(&result.Nominees, st, err)
	})
	g.Go(func() error {
		st, err := s.backend.SubmitPOAs(gctx, accountID, poas)
		return settle(&result.POAs, st, err)
	})
	g.Go(func() error {
		st, err := s.backend.SubmitHolders(gctx, accountID, holders)
		return settle(&result.Holders, st, err)
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token invalid")
		return nil, s.translate(ctx, accountID, err, "submit nomination")
	}

	s.finish(ctx, sub, result)
	span.SetAttributes(attribute.String("submission.status", string(result.Status())))

	if !result.OK() {
		span.SetStatus(codes.Error, string(result.Status()))
		return result, dErrors.New(dErrors.CodeSubmissionFailed, "one or more records were not saved")
	}

	if err := s.drafts.Delete(ctx, accountID); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		s.logger.WarnContext(ctx, "failed to clear draft after submit",
			"account_id", accountID,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	return result, nil
}

// settle records a section's response. Only a rejected token is returned as
// an error, which cancels the sibling calls.
func settle(out *Outcome, statuses []brokerage.RecordStatus, err error) error {
	if err != nil {
		if errors.Is(err, sentinel.ErrTokenInvalid) {
			return err
		}
		out.Error = describe(err)
		return nil
	}
	out.Statuses = statuses
	return nil
}

// finish records metrics, the submission log entry and the audit event.
func (s *Service) finish(ctx context.Context, sub models.Submission, result *SubmitResult) {
	for _, o := range result.outcomes() {
		s.metrics.IncrementSection(string(o.Section), o.OK())
	}

	sections := result.Sections()
	failures := result.Failures()
	if result.Partial() {
		s.metrics.IncrementPartial()
		s.logger.ErrorContext(ctx, "nomination partially persisted",
			"account_id", result.AccountID,
			"submission_id", result.SubmissionID,
			"request_id", requestcontext.RequestID(ctx),
			"sections", sections,
			"failures", failures,
		)
	}

	rec := models.SubmissionRecord{
		ID:         result.SubmissionID,
		AccountID:  result.AccountID,
		OperatorID: requestcontext.OperatorID(ctx),
		RequestID:  requestcontext.RequestID(ctx),
		Status:     result.Status(),
		Sections:   sections,
		Failures:   failures,
		CreatedAt:  requestcontext.Now(ctx),
	}
	if err := s.submissions.Append(ctx, rec); err != nil {
		s.logger.ErrorContext(ctx, "failed to record submission",
			"account_id", result.AccountID,
			"submission_id", result.SubmissionID,
			"error", err,
		)
	}

	action := audit.ActionSubmitted
	switch result.Status() {
	case models.StatusPartial:
		action = audit.ActionPartiallyPersisted
	case models.StatusFailed:
		action = audit.ActionSubmitFailed
	}
	auditSections := make(map[string]string, len(sections))
	for k, v := range sections {
		auditSections[string(k)] = v
	}
	s.emit(ctx, audit.Event{
		Action:       action,
		AccountID:    result.AccountID,
		SubmissionID: result.SubmissionID,
		PANHashes:    s.panHashes(sub),
		Sections:     auditSections,
	})
}

// History returns the most recent submit attempts for an account.
func (s *Service) History(ctx context.Context, accountID string, limit int) ([]models.SubmissionRecord, error) {
	if accountID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "account id is required")
	}
	if limit <= 0 || limit > 100 {
		limit = defaultHistoryLimit
	}
	recs, err := s.submissions.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list submissions")
	}
	return recs, nil
}

// translate maps infrastructure failures onto domain errors.
func (s *Service) translate(ctx context.Context, accountID string, err error, op string) error {
	switch {
	case errors.Is(err, sentinel.ErrTokenInvalid):
		s.emit(ctx, audit.Event{
			Action:    audit.ActionTokenRejected,
			AccountID: accountID,
			Reason:    op,
		})
		return dErrors.Wrap(err, dErrors.CodeUnauthorized, "brokerage token is invalid or expired")
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, "account not found")
	case errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodeTimeout, op+" timed out")
	case errors.Is(err, sentinel.ErrUnavailable), errors.Is(err, sentinel.ErrBadResponse):
		return dErrors.Wrap(err, dErrors.CodeUpstreamUnavailable, "brokerage backend unavailable")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+op)
	}
}

func (s *Service) emit(ctx context.Context, ev audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, ev); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"action", ev.Action,
			"account_id", ev.AccountID,
			"error", err,
		)
	}
}

func (s *Service) panHashes(sub models.Submission) []string {
	if s.hasher == nil {
		return nil
	}
	var pans []string
	for _, n := range sub.Nominees {
		pans = append(pans, n.PAN)
		if n.Guardian != nil {
			pans = append(pans, n.Guardian.PAN)
		}
	}
	pans = append(pans, sub.Holders.First.PAN)
	if sub.Holders.Second != nil {
		pans = append(pans, sub.Holders.Second.PAN)
	}
	if sub.Holders.Third != nil {
		pans = append(pans, sub.Holders.Third.PAN)
	}
	return s.hasher.HashAll(pans...)
}

func emptyOnNotFound(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil
	}
	return err
}
