package service

import (
	"strconv"

	"dematkyc/internal/brokerage"
	"dematkyc/internal/nomination/models"
)

// Outcome is the result of persisting one section.
type Outcome struct {
	Section   models.Section           `json:"section"`
	Attempted int                      `json:"attempted"`
	Statuses  []brokerage.RecordStatus `json:"statuses"`
	Error     string                   `json:"error,omitempty"`
}

// OK reports whether the call succeeded and every record reported a
// positive status. A short status array counts as failure.
func (o Outcome) OK() bool {
	if o.Error != "" || len(o.Statuses) != o.Attempted {
		return false
	}
	for _, st := range o.Statuses {
		if !st.Status {
			return false
		}
	}
	return true
}

// Result renders the outcome as "ok" or a short failure description.
func (o Outcome) Result() string {
	switch {
	case o.OK():
		return "ok"
	case o.Error != "":
		return "error"
	default:
		return "rejected"
	}
}

// Failures lists the backend messages for failed records.
func (o Outcome) Failures() []string {
	var out []string
	if o.Error != "" {
		out = append(out, string(o.Section)+": "+o.Error)
	}
	for i, st := range o.Statuses {
		if !st.Status {
			msg := st.Message
			if msg == "" {
				msg = "record rejected"
			}
			out = append(out, string(o.Section)+"."+strconv.Itoa(i)+": "+msg)
		}
	}
	if o.Error == "" && len(o.Statuses) != o.Attempted {
		out = append(out, string(o.Section)+": status count mismatch")
	}
	return out
}

// SubmitResult joins the three section outcomes. Success requires every
// record in every section to succeed; sections that did succeed are not
// rolled back when another fails.
type SubmitResult struct {
	SubmissionID string  `json:"submissionId"`
	AccountID    string  `json:"accountId"`
	Nominees     Outcome `json:"nominees"`
	POAs         Outcome `json:"poas"`
	Holders      Outcome `json:"holders"`
}

func (r *SubmitResult) outcomes() []Outcome {
	return []Outcome{r.Nominees, r.POAs, r.Holders}
}

// OK reports whether every section persisted cleanly.
func (r *SubmitResult) OK() bool {
	for _, o := range r.outcomes() {
		if !o.OK() {
			return false
		}
	}
	return true
}

// Partial reports whether some sections persisted while others failed.
func (r *SubmitResult) Partial() bool {
	var ok, failed bool
	for _, o := range r.outcomes() {
		if o.OK() {
			ok = true
		} else {
			failed = true
		}
	}
	return ok && failed
}

// Status summarises the result for the submission log.
func (r *SubmitResult) Status() models.SubmissionStatus {
	switch {
	case r.OK():
		return models.StatusSucceeded
	case r.Partial():
		return models.StatusPartial
	default:
		return models.StatusFailed
	}
}

// Sections maps each section to its Result.
func (r *SubmitResult) Sections() map[models.Section]string {
	out := make(map[models.Section]string, 3)
	for _, o := range r.outcomes() {
		out[o.Section] = o.Result()
	}
	return out
}

// Failures lists every failure across sections.
func (r *SubmitResult) Failures() []string {
	var out []string
	for _, o := range r.outcomes() {
		out = append(out, o.Failures()...)
	}
	return out
}
