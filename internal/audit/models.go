// Package audit records nomination activity for compliance review.
//
// Events are enriched from the request context, then published to Kafka
// through a buffered queue so the submit path never blocks on the broker.
// PAN values never leave the process in clear text; they are replaced by a
// keyed BLAKE2b digest.
package audit

import "time"

// EventCategory classifies audit events for retention and routing.
type EventCategory string

const (
	// CategoryCompliance covers events with regulatory significance:
	// submissions and partial persistence.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers rejected tokens and other access failures.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine activity such as drafts.
	CategoryOperations EventCategory = "operations"
)

// Action names an audited activity.
type Action string

const (
	ActionSubmitted          Action = "nomination_submitted"
	ActionPartiallyPersisted Action = "nomination_partially_persisted"
	ActionSubmitFailed       Action = "nomination_submit_failed"
	ActionValidationRejected Action = "nomination_validation_rejected"
	ActionTokenRejected      Action = "brokerage_token_rejected"
	ActionDraftSaved         Action = "nomination_draft_saved"
	ActionDraftDeleted       Action = "nomination_draft_deleted"
)

var actionCategories = map[Action]EventCategory{
	ActionSubmitted:          CategoryCompliance,
	ActionPartiallyPersisted: CategoryCompliance,
	ActionSubmitFailed:       CategoryCompliance,
	ActionValidationRejected: CategoryOperations,
	ActionTokenRejected:      CategorySecurity,
	ActionDraftSaved:         CategoryOperations,
	ActionDraftDeleted:       CategoryOperations,
}

// Category returns the category for this action. Unknown actions default to
// CategoryOperations.
func (a Action) Category() EventCategory {
	if cat, ok := actionCategories[a]; ok {
		return cat
	}
	return CategoryOperations
}

// Event is one audited activity. Keep it transport-agnostic so sinks can
// fan out.
type Event struct {
	ID           string            `json:"id"`
	Timestamp    time.Time         `json:"timestamp"`
	Category     EventCategory     `json:"category"`
	Action       Action            `json:"action"`
	AccountID    string            `json:"accountId"`
	SubmissionID string            `json:"submissionId,omitempty"`
	OperatorID   string            `json:"operatorId,omitempty"`
	RequestID    string            `json:"requestId,omitempty"`
	ClientIP     string            `json:"clientIp,omitempty"`
	Client       string            `json:"client,omitempty"`
	PANHashes    []string          `json:"panHashes,omitempty"`
	Sections     map[string]string `json:"sections,omitempty"`
	Reason       string            `json:"reason,omitempty"`
}
