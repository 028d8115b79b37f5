package report

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("invalid date range")

const dateLayout = "2006-01-02"

// ParseRange turns inclusive calendar date bounds ("2006-01-02") into a
// half-open UTC instant window [start 00:00, end+1d 00:00). The last instant
// of the end day is inside the window, the first instant of the next day is
// not. Every reporting read path goes through this so day boundaries cannot
// drift between endpoints.
func ParseRange(startDate, endDate string) (from, to time.Time, err error) {
	start, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return start, end.AddDate(0, 0, 1), nil
}
