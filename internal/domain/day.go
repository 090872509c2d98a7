package domain

import (
	"fmt"
	"strings"
)

// Day identifies one of the seven weekdays in the planning week.
// The set is closed and ordered; per-day logic iterates Week() rather
// than enumerating days by hand.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

var week = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Week returns the seven days in fixed order, Monday first.
func Week() [7]Day { return week }

// IsValid reports whether d is one of the seven weekday identifiers.
func (d Day) IsValid() bool {
	for _, w := range week {
		if w == d {
			return true
		}
	}
	return false
}

// Index returns d's position in the week (Monday = 0), or -1 when d is
// not a valid day.
func (d Day) Index() int {
	for i, w := range week {
		if w == d {
			return i
		}
	}
	return -1
}

// Title returns the capitalized display form, e.g. "Monday".
func (d Day) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[0])) + string(d[1:])
}

// Abbrev returns the three-letter display form, e.g. "Mon".
func (d Day) Abbrev() string {
	t := d.Title()
	if len(t) < 3 {
		return t
	}
	return t[:3]
}

// ParseDay normalizes s (case and surrounding whitespace) and returns the
// matching Day, or an error when s is outside the seven-day set.
func ParseDay(s string) (Day, error) {
	d := Day(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("unknown day %q", s)
	}
	return d, nil
}
