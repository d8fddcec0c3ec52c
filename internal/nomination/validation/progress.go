package validation

import (
	"context"

	"dematkyc/internal/nomination/models"
)

// Sections are the form areas the progress bar tracks, keyed by the path
// prefix their errors are reported under.
var Sections = []string{
	"wishToNominate",
	"nominees",
	"wishToPOA",
	"poas",
	"holders",
}

// Progress returns the percentage of Sections that currently carry no
// validation error.
func (v *Validator) Progress(ctx context.Context, s models.Submission) int {
	return ProgressOf(v.Validate(ctx, s))
}

// ProgressOf computes Progress from an error list already in hand.
func ProgressOf(errs ErrorList) int {
	clean := 0
	for _, section := range Sections {
		if len(errs.Under(section)) == 0 {
			clean++
		}
	}
	// the holder flag error belongs to the holders section
	if clean > 0 && len(errs.Under("addThirdHolder")) > 0 && len(errs.Under("holders")) == 0 {
		clean--
	}
	return clean * 100 / len(Sections)
}
