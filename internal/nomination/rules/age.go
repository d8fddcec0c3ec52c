package rules

import (
	"strings"
	"time"

	"dematkyc/internal/nomination/models"
)

// AgeOfMajority is the completed age at which a nominee stops being a minor.
const AgeOfMajority = 18

// ParseDate parses a form date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, strings.TrimSpace(s))
}

// AgeOn returns the number of completed years between dob and now. The
// year difference is reduced by one while this year's birthday is still
// ahead.
func AgeOn(dob, now time.Time) int {
	by, bm, bd := dob.Date()
	ny, nm, nd := now.Date()
	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	return age
}

// IsMinor reports whether a parseable dob makes the person younger than
// AgeOfMajority on now. Unparseable or empty dates are never minors.
func IsMinor(dob string, now time.Time) bool {
	t, err := ParseDate(dob)
	if err != nil {
		return false
	}
	return AgeOn(t, now) < AgeOfMajority
}

// EffectiveMinor combines the explicit toggle with the DOB-derived status.
func EffectiveMinor(n models.Nominee, now time.Time) bool {
	return n.IsMinor || IsMinor(n.DOB, now)
}

// MinorLocked reports whether the minor toggle is pinned to true by the DOB.
func MinorLocked(n models.Nominee, now time.Time) bool {
	return IsMinor(n.DOB, now)
}

// setMinor applies a minor status to a nominee. A minor always owns a
// guardian record; a non-minor never does.
func setMinor(n *models.Nominee, minor bool) {
	n.IsMinor = minor
	if !minor {
		n.Guardian = nil
		return
	}
	if n.Guardian == nil {
		n.Guardian = &models.Guardian{}
	}
}
