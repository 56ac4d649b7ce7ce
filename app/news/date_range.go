package news

import (
	"strings"
	"time"
)

type DateRange string

const (
	OneDay    DateRange = "1d"
	ThreeDays DateRange = "3d"
	OneWeek   DateRange = "1w"
	OneMonth  DateRange = "1m"
)

var dateRangeDays = map[DateRange]int{
	OneDay:    1,
	ThreeDays: 3,
	OneWeek:   7,
	OneMonth:  30,
}

// ParseDateRange normalizes user input. Unknown values fall back to one day.
func ParseDateRange(s string) DateRange {
	r := DateRange(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := dateRangeDays[r]; ok {
		return r
	}
	return OneDay
}

func (r DateRange) Days() int {
	if days, ok := dateRangeDays[r]; ok {
		return days
	}
	return 1
}

// Since returns the lower bound of the window ending at now.
func (r DateRange) Since(now time.Time) time.Time {
	return now.AddDate(0, 0, -r.Days())
}

func (r DateRange) String() string {
	return string(r)
}
