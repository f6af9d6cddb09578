package reminder

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(name, date string) Record {
	return Record{ID: uuid.New(), Entity: "dealers", Name: name, Date: date}
}

func TestComputeUpcoming_NextOccurrence(t *testing.T) {
	tests := []struct {
		name         string
		reference    time.Time
		date         string
		windowDays   int
		wantIncluded bool
		wantNext     string
		wantDays     int
	}{
		{
			name:         "upcoming within window",
			reference:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			date:         "1990-03-15",
			windowDays:   7,
			wantIncluded: true,
			wantNext:     "2024-03-15",
			wantDays:     5,
		},
		{
			name:         "upcoming outside window",
			reference:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			date:         "1990-03-15",
			windowDays:   3,
			wantIncluded: false,
		},
		{
			name:         "year rollover",
			reference:    time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
			date:         "1985-01-02",
			windowDays:   10,
			wantIncluded: true,
			wantNext:     "2025-01-02",
			wantDays:     5,
		},
		{
			name:         "today counts as day zero",
			reference:    time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			date:         "1990-06-15",
			windowDays:   0,
			wantIncluded: true,
			wantNext:     "2024-06-15",
			wantDays:     0,
		},
		{
			name:         "time of day does not roll today into next year",
			reference:    time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC),
			date:         "1990-06-15",
			windowDays:   7,
			wantIncluded: true,
			wantNext:     "2024-06-15",
			wantDays:     0,
		},
		{
			name:         "slash separated date",
			reference:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			date:         "1990/03/15",
			windowDays:   7,
			wantIncluded: true,
			wantNext:     "2024-03-15",
			wantDays:     5,
		},
		{
			name:         "stored date with time suffix",
			reference:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			date:         "1990-03-15T00:00:00Z",
			windowDays:   7,
			wantIncluded: true,
			wantNext:     "2024-03-15",
			wantDays:     5,
		},
		{
			name:         "feb 29 rolls to mar 1 in a non-leap year",
			reference:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			date:         "2000-02-29",
			windowDays:   60,
			wantIncluded: true,
			wantNext:     "2025-03-01",
			wantDays:     45,
		},
		{
			name:         "feb 29 kept in a leap year",
			reference:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			date:         "2000-02-29",
			windowDays:   30,
			wantIncluded: true,
			wantNext:     "2024-02-29",
			wantDays:     28,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeUpcoming([]Record{record("X", tt.date)}, tt.reference, tt.windowDays)
			if !tt.wantIncluded {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantNext, got[0].NextOccurrence)
			assert.Equal(t, tt.wantDays, got[0].DaysAway)
		})
	}
}

func TestComputeUpcoming_DropsUnusableDates(t *testing.T) {
	reference := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	records := []Record{
		record("empty", ""),
		record("two components", "1990-03"),
		record("not a date", "unknown"),
		record("month out of range", "1990-13-01"),
		record("valid", "1990-03-12"),
	}

	got := ComputeUpcoming(records, reference, 30)
	require.Len(t, got, 1)
	assert.Equal(t, "valid", got[0].Name)
}

func TestComputeUpcoming_SortedAndFiltered(t *testing.T) {
	reference := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	records := []Record{
		record("far", "1990-03-25"),  // 15 days away
		record("near", "1990-03-12"), // 2 days away
		record("past this year", "1990-01-05"),
		record("tie A", "1991-03-15"), // 5 days away
		record("tie B", "1992-03-15"), // 5 days away
	}

	got := ComputeUpcoming(records, reference, 20)
	require.Len(t, got, 4)
	assert.Equal(t, "near", got[0].Name)
	// stable: ties keep input order
	assert.Equal(t, "tie A", got[1].Name)
	assert.Equal(t, "tie B", got[2].Name)
	assert.Equal(t, "far", got[3].Name)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].DaysAway, got[i-1].DaysAway)
	}
	for _, u := range got {
		assert.LessOrEqual(t, u.DaysAway, 20)
		assert.GreaterOrEqual(t, u.DaysAway, 0)
	}
}

func TestComputeUpcoming_NextOccurrenceWithinOneYear(t *testing.T) {
	// Any valid month/day has exactly one occurrence in [reference, reference+1y).
	references := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	dates := []string{"1990-01-01", "1990-06-30", "1990-12-31", "2000-02-29"}

	for _, ref := range references {
		got := ComputeUpcoming([]Record{
			record("a", dates[0]), record("b", dates[1]),
			record("c", dates[2]), record("d", dates[3]),
		}, ref, 366)
		require.Len(t, got, 4)
		for _, u := range got {
			next, err := time.Parse("2006-01-02", u.NextOccurrence)
			require.NoError(t, err)
			assert.False(t, next.Before(time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)))
			assert.True(t, next.Before(ref.AddDate(1, 0, 1)))
		}
	}
}
