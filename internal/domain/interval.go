package domain

import (
	"fmt"
	"time"
)

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// intersect. A reservation ending exactly when another begins does not
// overlap, so back-to-back bookings are legal.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// ValidateWindow checks a proposed reservation window against a space's
// operating hours. Rules apply in order, first failure wins:
// the window must be strictly ordered, must not span calendar days, and its
// clock times must lie within [OpeningTime, ClosingTime], compared at second
// granularity. Calendar-day and clock-time checks read the timestamps in
// their own location; callers normalize to UTC, the zone the directories
// publish operating hours in. All failures wrap ErrValidation.
func ValidateWindow(start, end time.Time, space *Space) error {
	if !start.Before(end) {
		return fmt.Errorf("%w: start time must be before end time", ErrValidation)
	}

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return fmt.Errorf("%w: reservation must start and end on the same day", ErrValidation)
	}

	if TimeOfDayOf(start) < space.OpeningTime || TimeOfDayOf(end) > space.ClosingTime {
		return fmt.Errorf("%w: reservation must be within space opening hours: %s - %s",
			ErrValidation, space.OpeningTime, space.ClosingTime)
	}

	return nil
}
