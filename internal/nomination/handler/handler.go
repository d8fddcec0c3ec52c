// Package handler exposes the nomination service over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"dematkyc/internal/nomination/models"
	"dematkyc/internal/nomination/rules"
	"dematkyc/internal/nomination/service"
	"dematkyc/internal/nomination/validation"
	"dematkyc/internal/platform/metrics"
	"dematkyc/internal/platform/middleware"
	dErrors "dematkyc/pkg/domain-errors"
	"dematkyc/pkg/platform/httputil"
	"dematkyc/pkg/requestcontext"
)

const maxBodyBytes = 1 << 20

// Service defines the nomination operations the handler needs.
type Service interface {
	Load(ctx context.Context, accountID string) (models.Submission, error)
	Validate(ctx context.Context, sub models.Submission) validation.ErrorList
	Check(ctx context.Context, sub models.Submission) validation.ErrorList
	Apply(ctx context.Context, sub models.Submission, ev rules.Event) (models.Submission, error)
	Shares(count int) ([]int, error)
	Submit(ctx context.Context, accountID string, sub models.Submission) (*service.SubmitResult, error)
	SaveDraft(ctx context.Context, accountID string, sub models.Submission) (models.Draft, error)
	LoadDraft(ctx context.Context, accountID string) (*models.Draft, error)
	DeleteDraft(ctx context.Context, accountID string) error
	History(ctx context.Context, accountID string, limit int) ([]models.SubmissionRecord, error)
}

// Handler handles nomination endpoints.
type Handler struct {
	logger       *slog.Logger
	nomination   Service
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

// New creates a nomination Handler.
func New(
	nomination Service,
	logger *slog.Logger,
	metrics *metrics.Metrics,
	jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		nomination:   nomination,
		metrics:      metrics,
		jwtValidator: jwtValidator,
	}
}

// Register registers the nomination routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.ClientMetadata)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.Latency(h.metrics))
	router.Use(middleware.RequireAuth(h.jwtValidator, h.logger))

	router.Get("/accounts/{accountID}/nomination", h.handleLoad)
	router.Post("/accounts/{accountID}/nomination", h.handleSubmit)
	router.Put("/accounts/{accountID}/nomination/draft", h.handleSaveDraft)
	router.Get("/accounts/{accountID}/nomination/draft", h.handleLoadDraft)
	router.Delete("/accounts/{accountID}/nomination/draft", h.handleDeleteDraft)
	router.Get("/accounts/{accountID}/nomination/submissions", h.handleHistory)
	router.Post("/nomination/validate", h.handleValidate)
	router.Post("/nomination/events", h.handleApplyEvent)
	router.Get("/nomination/shares", h.handleShares)

	r.Mount("/", router)
}

// FormResponse is a submission plus the state the form renders around it.
type FormResponse struct {
	Submission     models.Submission    `json:"submission"`
	RemainingShare int                  `json:"remainingShare"`
	MinorLocked    []bool               `json:"minorLocked"`
	Progress       int                  `json:"progress"`
	Errors         validation.ErrorList `json:"errors"`
}

// ValidateResponse is the result of a validation-only request.
type ValidateResponse struct {
	Valid    bool                 `json:"valid"`
	Progress int                  `json:"progress"`
	Errors   validation.ErrorList `json:"errors"`
}

// ValidationErrorResponse is written with 422 when a submit fails validation.
type ValidationErrorResponse struct {
	Error  string               `json:"error"`
	Fields validation.ErrorList `json:"fields"`
}

// SubmitFailedResponse is written with 502 when any record was not saved.
type SubmitFailedResponse struct {
	Error            string                `json:"error"`
	ErrorDescription string                `json:"error_description"`
	Result           *service.SubmitResult `json:"result"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sub, err := h.nomination.Load(ctx, chi.URLParam(r, "accountID"))
	if err != nil {
		h.fail(ctx, w, "failed to load nomination", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.form(ctx, sub))
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var sub models.Submission
	if !h.decode(w, r, &sub) {
		return
	}
	errs := h.nomination.Validate(ctx, sub)
	httputil.WriteJSON(w, http.StatusOK, ValidateResponse{
		Valid:    !errs.HasErrors(),
		Progress: validation.ProgressOf(errs),
		Errors:   nonNil(errs),
	})
}

func (h *Handler) handleApplyEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req ApplyEventRequest
	if !h.decode(w, r, &req) {
		return
	}
	ev, err := decodeEvent(req.Event)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	sub, err := h.nomination.Apply(ctx, req.Submission, ev)
	if err != nil {
		h.fail(ctx, w, "failed to apply event", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.form(ctx, sub))
}

func (h *Handler) handleShares(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "count must be an integer"))
		return
	}
	shares, err := h.nomination.Shares(count)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string][]int{"shares": shares})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var sub models.Submission
	if !h.decode(w, r, &sub) {
		return
	}
	result, err := h.nomination.Submit(ctx, chi.URLParam(r, "accountID"), sub)
	if err != nil {
		if result != nil && dErrors.Is(err, dErrors.CodeSubmissionFailed) {
			de, _ := dErrors.As(err)
			httputil.WriteJSON(w, http.StatusBadGateway, SubmitFailedResponse{
				Error:            string(dErrors.CodeSubmissionFailed),
				ErrorDescription: de.Message,
				Result:           result,
			})
			return
		}
		h.fail(ctx, w, "failed to submit nomination", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var sub models.Submission
	if !h.decode(w, r, &sub) {
		return
	}
	draft, err := h.nomination.SaveDraft(ctx, chi.URLParam(r, "accountID"), sub)
	if err != nil {
		h.fail(ctx, w, "failed to save draft", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, draft)
}

func (h *Handler) handleLoadDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	draft, err := h.nomination.LoadDraft(ctx, chi.URLParam(r, "accountID"))
	if err != nil {
		h.fail(ctx, w, "failed to load draft", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, draft)
}

func (h *Handler) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.nomination.DeleteDraft(ctx, chi.URLParam(r, "accountID")); err != nil {
		h.fail(ctx, w, "failed to delete draft", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recs, err := h.nomination.History(ctx, chi.URLParam(r, "accountID"), limit)
	if err != nil {
		h.fail(ctx, w, "failed to list submissions", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string][]models.SubmissionRecord{"submissions": recs})
}

func (h *Handler) form(ctx context.Context, sub models.Submission) FormResponse {
	now := requestcontext.Now(ctx)
	locked := make([]bool, len(sub.Nominees))
	for i, n := range sub.Nominees {
		locked[i] = rules.MinorLocked(n, now)
	}
	errs := h.nomination.Check(ctx, sub)
	return FormResponse{
		Submission:     sub,
		RemainingShare: rules.RemainingShare(sub.Nominees),
		MinorLocked:    locked,
		Progress:       validation.ProgressOf(errs),
		Errors:         nonNil(errs),
	}
}

// decode reads a JSON body into dst, writing a 400 on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "invalid request body",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return false
	}
	return true
}

// fail writes err, rendering validation errors with their field list.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	var fields validation.ErrorList
	if dErrors.Is(err, dErrors.CodeValidation) && errors.As(err, &fields) {
		httputil.WriteJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  string(dErrors.CodeValidation),
			Fields: fields,
		})
		return
	}

	de, ok := dErrors.As(err)
	if !ok || httputil.StatusFor(de.Code) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}

func nonNil(errs validation.ErrorList) validation.ErrorList {
	if errs == nil {
		return validation.ErrorList{}
	}
	return errs
}
