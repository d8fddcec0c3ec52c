// Package validation checks a nomination submission and reports every
// violated constraint as a flat list of field errors.
package validation

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"dematkyc/internal/nomination/models"
	"dematkyc/internal/nomination/rules"
	strutil "dematkyc/pkg/platform/strings"
	"dematkyc/pkg/requestcontext"
)

// FieldError is one violated constraint. Path is a dotted locator with
// numeric indexes, e.g. "nominees.1.guardian.pan".
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ErrorList collects every violation found in one pass.
type ErrorList []FieldError

// HasErrors reports whether the list contains any violation.
func (l ErrorList) HasErrors() bool { return len(l) > 0 }

// Under returns the errors at prefix or nested below it.
func (l ErrorList) Under(prefix string) ErrorList {
	var out ErrorList
	for _, fe := range l {
		if fe.Path == prefix || strings.HasPrefix(fe.Path, prefix+".") {
			out = append(out, fe)
		}
	}
	return out
}

// Error summarises the list so it can travel inside a domain error.
func (l ErrorList) Error() string {
	if len(l) == 0 {
		return "no validation errors"
	}
	return fmt.Sprintf("%d validation errors, first at %s: %s", len(l), l[0].Path, l[0].Message)
}

// Cross-record messages.
const (
	MsgShareTotal       = "Total nominee share must equal 100%."
	MsgNomineeRequired  = "At least one nominee is required."
	MsgTooManyNominees  = "At most 3 nominees are allowed."
	MsgPOARequired      = "At least one POA is required."
	MsgTooManyPOAs      = "At most 2 POA records are allowed."
	MsgPOAFlagsMin      = "Select at least 2 nature types."
	MsgToDateBeforeFrom = "To date cannot be earlier than from date."
	MsgThirdNeedsSecond = "A third holder needs a second holder."
	MsgAnswerRequired   = RequiredMessage
)

var indexPattern = regexp.MustCompile(`\[(\d+)\]`)

// Validator runs the field-level tags and the cross-record rules.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the form's custom tags registered.
func New() (*Validator, error) {
	v, err := newValidate()
	if err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &Validator{validate: v}, nil
}

// Validate normalises s and reports every violation. The request-scoped time
// from ctx decides minor status and the no-future-date rule.
func (v *Validator) Validate(ctx context.Context, s models.Submission) ErrorList {
	s = Normalize(s)
	now := requestcontext.Now(ctx)

	var errs ErrorList
	errs = append(errs, v.nomination(ctx, s, now)...)
	errs = append(errs, v.poa(ctx, s)...)
	errs = append(errs, v.holders(ctx, s)...)
	return errs
}

func (v *Validator) nomination(ctx context.Context, s models.Submission, now time.Time) ErrorList {
	var errs ErrorList
	switch s.WishToNominate {
	case models.Yes:
	case models.No:
		return nil
	default:
		return append(errs, FieldError{Path: "wishToNominate", Message: MsgAnswerRequired})
	}

	switch {
	case len(s.Nominees) == 0:
		return append(errs, FieldError{Path: "nominees", Message: MsgNomineeRequired})
	case len(s.Nominees) > models.MaxNominees:
		errs = append(errs, FieldError{Path: "nominees", Message: MsgTooManyNominees})
	}

	for i, n := range s.Nominees {
		prefix := fmt.Sprintf("nominees.%d", i)
		errs = append(errs, v.record(ctx, prefix, n)...)

		if !rules.EffectiveMinor(n, now) {
			continue
		}
		if n.Guardian == nil {
			errs = append(errs, FieldError{Path: prefix + ".guardian", Message: RequiredMessage})
			continue
		}
		errs = append(errs, v.record(ctx, prefix+".guardian", *n.Guardian)...)
	}

	if rules.SumShares(s.Nominees) != rules.TotalShare {
		errs = append(errs, FieldError{Path: "nominees", Message: MsgShareTotal})
	}
	return errs
}

func (v *Validator) poa(ctx context.Context, s models.Submission) ErrorList {
	var errs ErrorList
	switch s.WishToPOA {
	case models.Yes:
	case models.No:
		return nil
	default:
		return append(errs, FieldError{Path: "wishToPOA", Message: MsgAnswerRequired})
	}

	switch {
	case len(s.POAs) == 0:
		return append(errs, FieldError{Path: "poas", Message: MsgPOARequired})
	case len(s.POAs) > models.MaxPOAs:
		errs = append(errs, FieldError{Path: "poas", Message: MsgTooManyPOAs})
	}

	for i, p := range s.POAs {
		prefix := fmt.Sprintf("poas.%d", i)
		errs = append(errs, v.record(ctx, prefix, p)...)

		if len(p.Flags) < models.MinPOAFlags {
			errs = append(errs, FieldError{Path: prefix + ".flags", Message: MsgPOAFlagsMin})
		}
		if p.ToDate == "" {
			continue
		}
		from, fromErr := rules.ParseDate(p.FromDate)
		to, toErr := rules.ParseDate(p.ToDate)
		if fromErr == nil && toErr == nil && to.Before(from) {
			errs = append(errs, FieldError{Path: prefix + ".toDate", Message: MsgToDateBeforeFrom})
		}
	}
	return errs
}

func (v *Validator) holders(ctx context.Context, s models.Submission) ErrorList {
	var errs ErrorList
	if s.AddThirdHolder && !s.AddSecondHolder {
		errs = append(errs, FieldError{Path: "addThirdHolder", Message: MsgThirdNeedsSecond})
	}
	check := func(enabled bool, path string, h *models.Holder) {
		if !enabled {
			return
		}
		if h == nil {
			errs = append(errs, FieldError{Path: path, Message: RequiredMessage})
			return
		}
		errs = append(errs, v.record(ctx, path, *h)...)
	}
	check(s.AddSecondHolder, "holders.secondHolder", s.Holders.Second)
	check(s.AddThirdHolder, "holders.thirdHolder", s.Holders.Third)
	return errs
}

// record runs the struct tags on one record and rewrites the validator's
// namespaces into form paths below prefix.
func (v *Validator) record(ctx context.Context, prefix string, rec any) ErrorList {
	err := v.validate.StructCtx(ctx, rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrorList{{Path: prefix, Message: err.Error()}}
	}
	out := make(ErrorList, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Path:    joinPath(prefix, fe.Namespace()),
			Message: messageFor(fe),
		})
	}
	return out
}

// joinPath drops the struct type name that leads a validator namespace and
// turns "flags[1]" into "flags.1".
func joinPath(prefix, namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return prefix
	}
	return prefix + "." + indexPattern.ReplaceAllString(rest, ".$1")
}

// Normalize trims free-text identifiers, upper-cases PANs and collapses
// duplicate POA flags. The input is not modified.
func Normalize(s models.Submission) models.Submission {
	out := s.Clone()
	for i := range out.Nominees {
		n := &out.Nominees[i]
		normalizeContact(&n.PAN, &n.Mobile, &n.Email, &n.ISDCode)
		strutil.TrimAll(&n.Name, &n.ProofNumber, &n.DOB)
		if n.Guardian != nil {
			g := n.Guardian
			normalizeContact(&g.PAN, &g.Mobile, &g.Email, &g.ISDCode)
			strutil.TrimAll(&g.Name, &g.Aadhar, &g.DOB)
		}
	}
	for _, h := range []*models.Holder{out.Holders.Second, out.Holders.Third} {
		if h == nil {
			continue
		}
		normalizeContact(&h.PAN, &h.Mobile, &h.Email, &h.ISDCode)
		strutil.TrimAll(&h.Name, &h.Aadhar, &h.DOB)
	}
	for i := range out.POAs {
		out.POAs[i].Flags = strutil.DedupeAndTrim(out.POAs[i].Flags)
	}
	return out
}

func normalizeContact(pan, mobile, email, isd *string) {
	strutil.TrimAll(pan, mobile, email, isd)
	*pan = strings.ToUpper(*pan)
}
