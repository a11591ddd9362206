package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnly(t *testing.T) {
	got := DateOnly(time.Date(2024, 6, 10, 15, 42, 7, 999, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestMonthStart(t *testing.T) {
	got := MonthStart(time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestYearStart(t *testing.T) {
	got := YearStart(time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestMonthEnd(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "mês de 31 dias",
			input:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "fevereiro bissexto",
			input:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "fevereiro comum",
			input:    time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "dezembro",
			input:    time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthEnd(tt.input))
		})
	}
}

func TestEqualDate(t *testing.T) {
	morning := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 10, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 6, 11, 8, 0, 0, 0, time.UTC)

	assert.True(t, EqualDate(morning, evening))
	assert.False(t, EqualDate(morning, nextDay))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, date.IsZero())

	_, err = ParseDate("10/06/2024")
	assert.Error(t, err)
}
