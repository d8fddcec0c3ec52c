package models

import "time"

// Section names the three independently persisted parts of a submission.
type Section string

const (
	SectionNominees Section = "nominees"
	SectionPOAs     Section = "poas"
	SectionHolders  Section = "holders"
)

// Sections lists the persisted sections in submission order.
var Sections = []Section{SectionNominees, SectionPOAs, SectionHolders}

// SubmissionStatus is the joined result of one submit attempt.
type SubmissionStatus string

const (
	StatusSucceeded SubmissionStatus = "succeeded"
	// StatusPartial means at least one section persisted and at least one
	// failed. The backend has no rollback, so the persisted part stays.
	StatusPartial SubmissionStatus = "partial"
	StatusFailed  SubmissionStatus = "failed"
)

// SubmissionRecord is one entry in the submission log.
type SubmissionRecord struct {
	ID         string             `json:"id"`
	AccountID  string             `json:"accountId"`
	OperatorID string             `json:"operatorId,omitempty"`
	RequestID  string             `json:"requestId,omitempty"`
	Status     SubmissionStatus   `json:"status"`
	Sections   map[Section]string `json:"sections"`
	Failures   []string           `json:"failures,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// Draft is a partially completed form saved between sessions.
type Draft struct {
	AccountID  string     `json:"accountId"`
	OperatorID string     `json:"operatorId,omitempty"`
	Submission Submission `json:"submission"`
	SavedAt    time.Time  `json:"savedAt"`
}
