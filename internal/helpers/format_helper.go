package helpers

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var dutchMonths = [...]string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

// FormatDateToLocale renders a date the way the confirmation mails and the
// date picker show it: "02 juni 18:00", with the year appended only when
// it differs from the current one.
func FormatDateToLocale(t time.Time) string {
	formatted := fmt.Sprintf("%02d %s %02d:%02d", t.Day(), dutchMonths[t.Month()-1], t.Hour(), t.Minute())
	if t.Year() != time.Now().Year() {
		formatted = fmt.Sprintf("%02d %s %d %02d:%02d", t.Day(), dutchMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
	}
	return formatted
}

// FormatAmountToLocale renders a monetary amount in euros, e.g. "€ 7,50".
func FormatAmountToLocale(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	// Dutch locale uses a decimal comma.
	b := []byte(s)
	for i := range b {
		if b[i] == '.' {
			b[i] = ','
		}
	}
	return "€ " + string(b)
}

// FormatPercentageToLocale renders a 0..1 fraction as a percentage with one
// decimal, e.g. "66,7%".
func FormatPercentageToLocale(fraction float64) string {
	s := fmt.Sprintf("%.1f%%", fraction*100)
	b := []byte(s)
	for i := range b {
		if b[i] == '.' {
			b[i] = ','
		}
	}
	return string(b)
}
