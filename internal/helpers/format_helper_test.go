package helpers

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatDateToLocale(t *testing.T) {
	past := time.Date(2024, time.June, 1, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "01 juni 2024 18:00", FormatDateToLocale(past))

	// The year is dropped for dates in the current year.
	current := time.Date(time.Now().Year(), time.December, 8, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "08 december 09:05", FormatDateToLocale(current))
}

func TestFormatAmountToLocale(t *testing.T) {
	tests := []struct {
		amount   decimal.Decimal
		expected string
	}{
		{decimal.NewFromFloat(7.5), "€ 7,50"},
		{decimal.NewFromInt(3), "€ 3,00"},
		{decimal.Zero, "€ 0,00"},
		{decimal.NewFromFloat(12.345), "€ 12,35"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmountToLocale(tt.amount))
		})
	}
}

func TestFormatPercentageToLocale(t *testing.T) {
	assert.Equal(t, "66,7%", FormatPercentageToLocale(2.0/3.0))
	assert.Equal(t, "100,0%", FormatPercentageToLocale(1))
	assert.Equal(t, "0,0%", FormatPercentageToLocale(0))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-06-01T18:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-01T18:00:00Z", parsed.Format(time.RFC3339))

	_, err = ParseDate("01-06-2024")
	assert.Error(t, err)
}

func TestStringToInt(t *testing.T) {
	n, err := StringToInt("42")
	assert.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = StringToInt(fmt.Sprintf("%d!", 42))
	assert.Error(t, err)
}
