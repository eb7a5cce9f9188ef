package dates

import "time"

const (
	ukLayout  = "02/01/2006"
	isoLayout = "2006-01-02"
)

// ParseUKDate parses a dd/MM/yyyy string. The boolean reports whether the
// input was a valid date in that format; callers fall back rather than fail.
func ParseUKDate(s string) (time.Time, bool) {
	t, err := time.Parse(ukLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseISODate parses a yyyy-MM-dd string.
func ParseISODate(s string) (time.Time, bool) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ToISODate formats a date as the canonical yyyy-MM-dd string.
func ToISODate(t time.Time) string {
	return t.Format(isoLayout)
}

// FormatHumanDate formats a date for display, e.g. "5 Jan 2026".
func FormatHumanDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}
