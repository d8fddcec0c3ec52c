package rules

import (
	"strings"
	"time"

	"dematkyc/internal/nomination/models"
)

// minorIndicatorCodes maps the minor pattern across nominee positions ("M"
// minor, "-" adult) to the depository's minor-indicator code. The table is
// closed: patterns not listed carry no code.
var minorIndicatorCodes = map[string]string{
	"M":   "FNM",
	"M-":  "FNM",
	"M--": "FNM",
	"-M":  "SNM",
	"-M-": "SNM",
	"--M": "TNM",
	"MM-": "FSM",
	"M-M": "FTM",
	"-MM": "STM",
	// Two minors out of two is "all nominees", not first-and-second.
	"MM":  "ANM",
	"MMM": "ANM",
}

// MinorIndicatorCode returns the code for a minor pattern, or "" when the
// pattern has none.
func MinorIndicatorCode(minors []bool) string {
	var b strings.Builder
	for _, m := range minors {
		if m {
			b.WriteByte('M')
		} else {
			b.WriteByte('-')
		}
	}
	return minorIndicatorCodes[b.String()]
}

// MinorIndicators returns the code to send with each nominee position:
// minor positions carry the pattern's code, adult positions carry "".
func MinorIndicators(minors []bool) []string {
	code := MinorIndicatorCode(minors)
	out := make([]string, len(minors))
	for i, m := range minors {
		if m {
			out[i] = code
		}
	}
	return out
}

// MinorPattern evaluates the effective minor status of every nominee.
func MinorPattern(nominees []models.Nominee, now time.Time) []bool {
	minors := make([]bool, len(nominees))
	for i, n := range nominees {
		minors[i] = EffectiveMinor(n, now)
	}
	return minors
}
