package rules

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"dematkyc/internal/nomination/models"
	dErrors "dematkyc/pkg/domain-errors"
)

// DefaultPOAPurposeCode is the purpose code given to a POA created on opt-in.
const DefaultPOAPurposeCode = "DDPI"

// Event is one user action on the form. Apply is the only way events change
// a submission.
type Event interface {
	apply(s *models.Submission, now time.Time) error
}

// Apply returns a new submission with ev applied. The input is not modified.
func Apply(s models.Submission, ev Event, now time.Time) (models.Submission, error) {
	if ev == nil {
		return s, dErrors.New(dErrors.CodeBadRequest, "event is required")
	}
	out := s.Clone()
	if err := ev.apply(&out, now); err != nil {
		return s, err
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// Nomination
// -----------------------------------------------------------------------------

// SetWishToNominate answers the nomination opt-in. Opting in creates the
// first nominee with the full share; opting out clears every nominee.
type SetWishToNominate struct {
	Value models.YesNo
}

func (e SetWishToNominate) apply(s *models.Submission, _ time.Time) error {
	switch e.Value {
	case models.Yes:
		s.WishToNominate = models.Yes
		if len(s.Nominees) == 0 {
			s.Nominees = []models.Nominee{{}}
			Redistribute(s.Nominees)
		}
	case models.No:
		s.WishToNominate = models.No
		s.Nominees = nil
	default:
		return dErrors.New(dErrors.CodeBadRequest, "wishToNominate must be yes or no")
	}
	return nil
}

// AddNominee appends an empty nominee slot and redistributes shares.
type AddNominee struct{}

func (AddNominee) apply(s *models.Submission, _ time.Time) error {
	if s.WishToNominate != models.Yes {
		return dErrors.New(dErrors.CodeInvariantViolation, "nomination is not opted in")
	}
	if len(s.Nominees) >= models.MaxNominees {
		return dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("at most %d nominees are allowed", models.MaxNominees))
	}
	s.Nominees = append(s.Nominees, models.Nominee{})
	Redistribute(s.Nominees)
	return nil
}

// RemoveNominee drops a nominee and redistributes shares among the rest.
type RemoveNominee struct {
	Index int
}

func (e RemoveNominee) apply(s *models.Submission, _ time.Time) error {
	if err := checkIndex("nominee", e.Index, len(s.Nominees)); err != nil {
		return err
	}
	s.Nominees = append(s.Nominees[:e.Index], s.Nominees[e.Index+1:]...)
	Redistribute(s.Nominees)
	return nil
}

// SetNomineeDOB changes a nominee's date of birth. A parseable DOB under 18
// forces the minor toggle on; an adult DOB leaves it as the user set it.
type SetNomineeDOB struct {
	Index int
	DOB   string
}

func (e SetNomineeDOB) apply(s *models.Submission, now time.Time) error {
	if err := checkIndex("nominee", e.Index, len(s.Nominees)); err != nil {
		return err
	}
	n := &s.Nominees[e.Index]
	n.DOB = e.DOB
	if IsMinor(e.DOB, now) {
		setMinor(n, true)
	}
	return nil
}

// SetNomineeMinor flips the explicit minor toggle. The toggle cannot be
// cleared while the DOB makes the nominee a minor.
type SetNomineeMinor struct {
	Index int
	Value bool
}

func (e SetNomineeMinor) apply(s *models.Submission, now time.Time) error {
	if err := checkIndex("nominee", e.Index, len(s.Nominees)); err != nil {
		return err
	}
	n := &s.Nominees[e.Index]
	if MinorLocked(*n, now) {
		setMinor(n, true)
		return nil
	}
	setMinor(n, e.Value)
	return nil
}

// SetNomineeShare records a manual share edit. No redistribution happens.
type SetNomineeShare struct {
	Index int
	Value int
}

func (e SetNomineeShare) apply(s *models.Submission, _ time.Time) error {
	if err := checkIndex("nominee", e.Index, len(s.Nominees)); err != nil {
		return err
	}
	s.Nominees[e.Index].PercentageShares = e.Value
	return nil
}

// -----------------------------------------------------------------------------
// POA
// -----------------------------------------------------------------------------

// SetWishToPOA answers the POA opt-in. Opting in creates a default POA when
// none exists; opting out clears every POA.
type SetWishToPOA struct {
	Value models.YesNo
}

func (e SetWishToPOA) apply(s *models.Submission, now time.Time) error {
	switch e.Value {
	case models.Yes:
		s.WishToPOA = models.Yes
		if len(s.POAs) == 0 {
			s.POAs = []models.POAGrant{DefaultPOA(now)}
		}
	case models.No:
		s.WishToPOA = models.No
		s.POAs = nil
	default:
		return dErrors.New(dErrors.CodeBadRequest, "wishToPOA must be yes or no")
	}
	return nil
}

// AddPOA appends a default POA entry.
type AddPOA struct{}

func (AddPOA) apply(s *models.Submission, now time.Time) error {
	if s.WishToPOA != models.Yes {
		return dErrors.New(dErrors.CodeInvariantViolation, "POA is not opted in")
	}
	if len(s.POAs) >= models.MaxPOAs {
		return dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("at most %d POA records are allowed", models.MaxPOAs))
	}
	s.POAs = append(s.POAs, DefaultPOA(now))
	return nil
}

// RemovePOA drops a POA entry.
type RemovePOA struct {
	Index int
}

func (e RemovePOA) apply(s *models.Submission, _ time.Time) error {
	if err := checkIndex("poa", e.Index, len(s.POAs)); err != nil {
		return err
	}
	s.POAs = append(s.POAs[:e.Index], s.POAs[e.Index+1:]...)
	return nil
}

// DefaultPOA is the entry created when the user opts into POA.
func DefaultPOA(now time.Time) models.POAGrant {
	today := now.Format(models.DateLayout)
	return models.POAGrant{
		ID:          uuid.NewString(),
		SetupDate:   today,
		FromDate:    today,
		PurposeCode: DefaultPOAPurposeCode,
		Flags:       []models.POAFlag{},
	}
}

// -----------------------------------------------------------------------------
// Holders
// -----------------------------------------------------------------------------

// SetAddSecondHolder toggles the second holder. Turning it off also turns
// off and clears the third holder.
type SetAddSecondHolder struct {
	Value bool
}

func (e SetAddSecondHolder) apply(s *models.Submission, _ time.Time) error {
	s.AddSecondHolder = e.Value
	if e.Value {
		if s.Holders.Second == nil {
			s.Holders.Second = &models.Holder{}
		}
		return nil
	}
	s.Holders.Second = nil
	s.AddThirdHolder = false
	s.Holders.Third = nil
	return nil
}

// SetAddThirdHolder toggles the third holder. Without a second holder the
// flag stays off.
type SetAddThirdHolder struct {
	Value bool
}

func (e SetAddThirdHolder) apply(s *models.Submission, _ time.Time) error {
	if !s.AddSecondHolder || !e.Value {
		s.AddThirdHolder = false
		s.Holders.Third = nil
		return nil
	}
	s.AddThirdHolder = true
	if s.Holders.Third == nil {
		s.Holders.Third = &models.Holder{}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Derivation
// -----------------------------------------------------------------------------

// Derive re-establishes minor toggles and guardian presence, and drops
// holder records whose flag is off. Opt-in answers and holder flags are the
// user's and are left as they are.
func Derive(s models.Submission, now time.Time) models.Submission {
	out := s.Clone()

	for i := range out.Nominees {
		setMinor(&out.Nominees[i], EffectiveMinor(out.Nominees[i], now))
	}

	if !out.AddSecondHolder {
		out.Holders.Second = nil
	} else if out.Holders.Second == nil {
		out.Holders.Second = &models.Holder{}
	}
	if !out.AddThirdHolder {
		out.Holders.Third = nil
	} else if out.Holders.Third == nil {
		out.Holders.Third = &models.Holder{}
	}
	return out
}

func checkIndex(kind string, index, length int) error {
	if index < 0 || index >= length {
		return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("%s index %d out of range", kind, index))
	}
	return nil
}
