package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Space is a snapshot of a record owned by the space directory, fetched at
// validation time and never cached.
type Space struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type,omitempty"`
	Capacity    int       `json:"capacity,omitempty"`
	OpeningTime TimeOfDay `json:"opening_time"`
	ClosingTime TimeOfDay `json:"closing_time"`
	Active      bool      `json:"active"`
}

// TimeOfDay is a clock time with no date component, stored as seconds since
// midnight. The directories serialize it as "HH:MM" or "HH:MM:SS".
// Second granularity matters: operating-hours checks must not admit a window
// that overruns closing by less than a minute.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	second := 0
	if len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
		if err != nil || second < 0 || second > 59 {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
	}

	return TimeOfDay((hour*60+minute)*60 + second), nil
}

// TimeOfDayOf truncates a timestamp to its clock-time component.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay((t.Hour()*60+t.Minute())*60 + t.Second())
}

func (t TimeOfDay) String() string {
	hour, minute, second := int(t)/3600, int(t)/60%60, int(t)%60
	if second == 0 {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
