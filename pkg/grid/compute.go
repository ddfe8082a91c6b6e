package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ToNumber coerces arbitrary numeric text to a float64. Anything that does not
// parse as a finite number degrades to zero; the raw text is kept elsewhere so
// transient invalid input survives until save-time coercion.
func ToNumber(v string) float64 {
	s := strings.TrimSpace(v)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0
	}
	return n
}

// DeriveEffort computes jornales from area and ratio, rounded to 2 decimals.
func DeriveEffort(ha, ratio float64) float64 {
	return math.Round(ha*ratio*100) / 100
}

// FormatNum renders a derived value the way the grid stores it: shortest
// representation, no trailing zeros ("3", not "3.00").
func FormatNum(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Fmt2 renders a value with exactly two decimals for totals and summaries.
func Fmt2(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// DaysOfMonth lists every date of (year, month) as YYYY-MM-DD.
func DaysOfMonth(year, month int) []string {
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	days := make([]string, 0, last)
	for d := 1; d <= last; d++ {
		days = append(days, fmt.Sprintf("%04d-%02d-%02d", year, month, d))
	}
	return days
}
