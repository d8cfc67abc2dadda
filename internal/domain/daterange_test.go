package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func mustRangeHelper(start, end time.Time) DateRange {
	r, err := NewDateRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("start after end returns error", func(t *testing.T) {
		_, err := NewDateRange(day(2026, 6, 15), day(2026, 6, 10))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("single day range is valid", func(t *testing.T) {
		r, err := NewDateRange(day(2026, 6, 10), day(2026, 6, 10))
		require.NoError(t, err)
		assert.Equal(t, 1, r.Days())
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		start := time.Date(2026, 6, 10, 23, 59, 0, 0, time.UTC)
		end := time.Date(2026, 6, 10, 0, 1, 0, 0, time.UTC)

		r, err := NewDateRange(start, end)
		require.NoError(t, err)
		assert.Equal(t, day(2026, 6, 10), r.Start)
		assert.Equal(t, day(2026, 6, 10), r.End)
	})
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        DateRange
		b        DateRange
		expected bool
	}{
		{
			name:     "disjoint ranges do not overlap",
			a:        DateRange{Start: day(2026, 6, 1), End: day(2026, 6, 5)},
			b:        DateRange{Start: day(2026, 6, 7), End: day(2026, 6, 10)},
			expected: false,
		},
		{
			name:     "touching endpoints share a day",
			a:        DateRange{Start: day(2026, 6, 5), End: day(2026, 6, 10)},
			b:        DateRange{Start: day(2026, 6, 10), End: day(2026, 6, 15)},
			expected: true,
		},
		{
			name:     "adjacent days do not overlap",
			a:        DateRange{Start: day(2026, 6, 5), End: day(2026, 6, 10)},
			b:        DateRange{Start: day(2026, 6, 11), End: day(2026, 6, 15)},
			expected: false,
		},
		{
			name:     "nested range overlaps",
			a:        DateRange{Start: day(2026, 6, 1), End: day(2026, 6, 30)},
			b:        DateRange{Start: day(2026, 6, 10), End: day(2026, 6, 12)},
			expected: true,
		},
		{
			name:     "identical ranges overlap",
			a:        DateRange{Start: day(2026, 6, 10), End: day(2026, 6, 15)},
			b:        DateRange{Start: day(2026, 6, 10), End: day(2026, 6, 15)},
			expected: true,
		},
		{
			name:     "partial overlap at the tail",
			a:        DateRange{Start: day(2026, 6, 1), End: day(2026, 6, 12)},
			b:        DateRange{Start: day(2026, 6, 10), End: day(2026, 6, 20)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

func TestDateRange_Days(t *testing.T) {
	tests := []struct {
		name     string
		r        DateRange
		expected int
	}{
		{"single day", mustRangeHelper(day(2026, 6, 10), day(2026, 6, 10)), 1},
		{"weekend", mustRangeHelper(day(2026, 6, 13), day(2026, 6, 14)), 2},
		{"full week", mustRangeHelper(day(2026, 6, 1), day(2026, 6, 7)), 7},
		{"across month boundary", mustRangeHelper(day(2026, 6, 28), day(2026, 7, 3)), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.r.Days())
		})
	}
}

func TestDateRange_Contains(t *testing.T) {
	r := mustRangeHelper(day(2026, 6, 10), day(2026, 6, 15))

	assert.True(t, r.Contains(day(2026, 6, 10)))
	assert.True(t, r.Contains(day(2026, 6, 12)))
	assert.True(t, r.Contains(day(2026, 6, 15)))
	assert.False(t, r.Contains(day(2026, 6, 9)))
	assert.False(t, r.Contains(day(2026, 6, 16)))

	// Время суток не влияет на попадание в диапазон
	assert.True(t, r.Contains(time.Date(2026, 6, 15, 23, 0, 0, 0, time.UTC)))
}

func TestDateRange_StartsBefore(t *testing.T) {
	r := mustRangeHelper(day(2026, 6, 10), day(2026, 6, 15))

	assert.True(t, r.StartsBefore(day(2026, 6, 11)))
	assert.False(t, r.StartsBefore(day(2026, 6, 10)))
	assert.False(t, r.StartsBefore(day(2026, 6, 9)))
}
