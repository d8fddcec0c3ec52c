package validation

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"dematkyc/internal/nomination/models"
	"dematkyc/internal/nomination/rules"
	"dematkyc/pkg/requestcontext"
)

var (
	panPattern    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadharPattern = regexp.MustCompile(`^([0-9]{12}|[*xX]{8}[0-9]{4})$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// RequiredMessage replaces every "required" failure.
const RequiredMessage = "This field is required."

// messages maps validation tags to user-facing messages. %s receives the
// tag parameter where one exists.
var messages = map[string]string{
	"required":         RequiredMessage,
	"pan":              "PAN must be 5 letters, 4 digits and a letter.",
	"aadhar":           "Aadhar must be 12 digits or 8 mask characters followed by 4 digits.",
	"mobile":           "Mobile number must be exactly 10 digits.",
	"email":            "Enter a valid email address.",
	"isodate":          "Date must be in YYYY-MM-DD format.",
	"pastdate":         "Date cannot be in the future.",
	"relation":         "Select a relation from the list.",
	"guardianrelation": "Select a guardian relation from the list.",
	"oneof":            "Must be one of: %s.",
	"numeric":          "Must contain digits only.",
	"len":              "Must be exactly %s characters.",
	"max":              "Must be at most %s.",
	"min":              "Must be at least %s.",
}

// newValidate builds the field-level validator with the form's custom tags.
func newValidate() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	plain := map[string]validator.Func{
		"pan":              validPAN,
		"aadhar":           validAadhar,
		"mobile":           validMobile,
		"isodate":          validISODate,
		"relation":         oneOfList(models.NomineeRelations),
		"guardianrelation": oneOfList(models.GuardianRelations),
	}
	for tag, fn := range plain {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %q: %w", tag, err)
		}
	}
	if err := v.RegisterValidationCtx("pastdate", notInFuture); err != nil {
		return nil, fmt.Errorf("register %q: %w", "pastdate", err)
	}
	return v, nil
}

// validPAN accepts lower-case input; the stored value is upper-cased by
// Normalize.
func validPAN(fl validator.FieldLevel) bool {
	return panPattern.MatchString(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
}

func validAadhar(fl validator.FieldLevel) bool {
	return aadharPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validMobile(fl validator.FieldLevel) bool {
	return mobilePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validISODate(fl validator.FieldLevel) bool {
	_, err := rules.ParseDate(fl.Field().String())
	return err == nil
}

// notInFuture rejects dates strictly after the request-scoped day. Format
// errors are left to isodate.
func notInFuture(ctx context.Context, fl validator.FieldLevel) bool {
	d, err := rules.ParseDate(fl.Field().String())
	if err != nil {
		return true
	}
	now := requestcontext.Now(ctx)
	today, _ := rules.ParseDate(now.Format(models.DateLayout))
	return !d.After(today)
}

func oneOfList(list []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(list, fl.Field().String())
	}
}

// messageFor renders a field error. Tags without an entry fall back to a
// generic message naming the tag.
func messageFor(fe validator.FieldError) string {
	tmpl, ok := messages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("Failed %s check.", fe.Tag())
	}
	if strings.Contains(tmpl, "%s") {
		return fmt.Sprintf(tmpl, strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return tmpl
}
