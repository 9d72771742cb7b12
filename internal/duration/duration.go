// internal/duration/duration.go
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned for any text outside the accepted grammar.
var ErrInvalidFormat = errors.New("invalid duration format")

// Minutes is a logged work duration. Zero means "not specified".
// Stored values are non-negative multiples of 15.
type Minutes int

const Unspecified Minutes = 0

var (
	minutesOnlyRe  = regexp.MustCompile(`^(\d+)\s+minutes?$`)
	hoursOnlyRe    = regexp.MustCompile(`^(\d+)\s+hours?$`)
	hoursMinutesRe = regexp.MustCompile(`^(\d+)\s+hours?\s+(\d+)\s+minutes?$`)
)

func validQuarter(m int) bool {
	return m == 15 || m == 30 || m == 45
}

// Parse converts logged time text into minutes.
//
// Accepted forms (case-insensitive, singular/plural):
//
//	"15 minutes" | "30 minutes" | "45 minutes"
//	"N hours"                      (any non-negative N)
//	"N hours M minutes"            (M in {15,30,45})
//
// Empty input means the time was never specified. Everything else,
// including "90 minutes" or "1.5 hours", fails with ErrInvalidFormat.
// "0 hours" normalizes to Unspecified.
func Parse(raw string) (Minutes, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return Unspecified, nil
	}

	if m := minutesOnlyRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || !validQuarter(n) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
		}
		return Minutes(n), nil
	}

	if m := hoursOnlyRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
		}
		return Minutes(n * 60), nil
	}

	if m := hoursMinutesRe.FindStringSubmatch(s); m != nil {
		h, err1 := strconv.Atoi(m[1])
		mm, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil || !validQuarter(mm) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
		}
		return Minutes(h*60 + mm), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
}

// Validate runs the Parse grammar without keeping the result.
// Used on every write to a work item's time field.
func Validate(raw string) error {
	_, err := Parse(raw)
	return err
}

// String formats minutes back into the canonical text.
// Round-trips with Parse for every legal value.
func (m Minutes) String() string {
	if m <= 0 {
		return "Not specified"
	}
	h := int(m) / 60
	r := int(m) % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%d minutes", r)
	case r == 0:
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	default:
		if h == 1 {
			return fmt.Sprintf("1 hour %d minutes", r)
		}
		return fmt.Sprintf("%d hours %d minutes", h, r)
	}
}
