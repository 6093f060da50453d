package offer

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	ErrTimeRangeInPast  = errors.New("start time cannot be in the past")
	ErrNegativePoints   = errors.New("points cannot be negative")
)

type TimeRange struct {
	start time.Time
	end   time.Time
}

func NewTimeRange(start, end time.Time, now time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	if start.Before(now) {
		return TimeRange{}, ErrTimeRangeInPast
	}
	return TimeRange{start: start, end: end}, nil
}

// ReconstructTimeRange rebuilds a range from storage without the
// future-start check. Persisted slots may legitimately be in the past.
func ReconstructTimeRange(start, end time.Time) TimeRange {
	return TimeRange{start: start, end: end}
}

func (tr TimeRange) Start() time.Time {
	return tr.start
}

func (tr TimeRange) End() time.Time {
	return tr.end
}

func (tr TimeRange) Duration() time.Duration {
	return tr.end.Sub(tr.start)
}

func (tr TimeRange) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", tr.start.Format(time.RFC3339), tr.end.Format(time.RFC3339))
}

func (tr TimeRange) Overlaps(other TimeRange) bool {
	return tr.start.Before(other.end) && other.start.Before(tr.end)
}

// Points is a non-negative amount of the marketplace's internal currency.
type Points struct {
	value int64
}

func NewPoints(v int64) (Points, error) {
	if v < 0 {
		return Points{}, ErrNegativePoints
	}
	return Points{value: v}, nil
}

func (p Points) Value() int64 { return p.value }

func (p Points) Add(other Points) Points {
	return Points{value: p.value + other.value}
}

type Subject struct {
	value string
}

func NewSubject(s string) (Subject, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < 1 || n > 100 {
		return Subject{}, ErrInvalidSubject
	}
	return Subject{value: s}, nil
}

func (s Subject) Value() string { return s.value }
