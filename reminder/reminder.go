// Package reminder computes upcoming occurrences of recurring annual dates
// (birthdays, anniversaries) within a lookahead window. It is a pure
// in-memory pass: callers load the dated records and supply the reference
// "now"; no I/O happens here.
package reminder

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Record is one dated entity row fed to the engine. Date holds the stored
// calendar date (YYYY-MM-DD or YYYY/MM/DD); only its month and day matter,
// the year component is ignored for recurrence.
type Record struct {
	ID     uuid.UUID `json:"id"`
	Entity string    `json:"entity"`
	Name   string    `json:"name"`
	Date   string    `json:"birthday"`
	Phone  string    `json:"phone"`
	Email  string    `json:"email"`
}

// Upcoming is a Record annotated with its computed next occurrence.
type Upcoming struct {
	Record
	NextOccurrence string `json:"nextBirthday"`
	DaysAway       int    `json:"daysAway"`
}

// ComputeUpcoming returns the records whose recurring date falls within
// windowDays of reference, annotated with the next occurrence and the number
// of whole days until it, sorted ascending by days away (stable, so ties
// keep input order).
//
// The comparison is time-of-day-agnostic: both reference and candidate are
// taken at midnight, so a date recurring today is day 0, not rolled to next
// year. Records with an empty or malformed date are silently dropped.
func ComputeUpcoming(records []Record, reference time.Time, windowDays int) []Upcoming {
	today := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)

	out := make([]Upcoming, 0, len(records))
	for _, r := range records {
		next, ok := nextOccurrence(today, r.Date)
		if !ok {
			continue
		}
		daysAway := int(next.Sub(today).Hours() / 24)
		if daysAway > windowDays {
			continue
		}
		out = append(out, Upcoming{
			Record:         r,
			NextOccurrence: next.Format(dateLayout),
			DaysAway:       daysAway,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysAway < out[j].DaysAway
	})
	return out
}

// nextOccurrence builds the next future-or-today date sharing month and day
// with value. today must be at midnight UTC.
//
// A Feb 29 date in a non-leap target year is normalized by time.Date to
// Mar 1 (roll-forward policy).
func nextOccurrence(today time.Time, value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	// keep only the date portion when the stored value carries a time suffix
	if i := strings.IndexAny(value, "T "); i > 0 {
		value = value[:i]
	}
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == '-' || r == '/'
	})
	if len(parts) < 3 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	candidate := time.Date(today.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if candidate.Before(today) {
		candidate = time.Date(today.Year()+1, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}
	return candidate, true
}
