package match

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format accepted by the CLI and the API filter
const DateLayout = "2006-01-02"

// Today returns the calendar date of now in YYYY-MM-DD form, in now's location.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// ValidateDate checks that date is a real calendar date in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
	}
	return nil
}
