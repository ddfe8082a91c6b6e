package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveEffort(t *testing.T) {
	assert.Equal(t, 3.0, DeriveEffort(2, 1.5))
	assert.Equal(t, 0.33, DeriveEffort(0.1, 3.333))
	assert.Equal(t, 0.0, DeriveEffort(0, 99))
	assert.Equal(t, 12.35, DeriveEffort(12.345, 1))
}

func TestToNumber(t *testing.T) {
	assert.Equal(t, 2.5, ToNumber("2.5"))
	assert.Equal(t, 2.5, ToNumber("  2.5  "))
	assert.Equal(t, 0.0, ToNumber(""))
	assert.Equal(t, 0.0, ToNumber("abc"))
	assert.Equal(t, 0.0, ToNumber("1.2.3"))
	assert.Equal(t, 0.0, ToNumber("NaN"))
	assert.Equal(t, 0.0, ToNumber("Inf"))
	assert.Equal(t, -4.0, ToNumber("-4"))
}

func TestFormatNum(t *testing.T) {
	assert.Equal(t, "3", FormatNum(3))
	assert.Equal(t, "3.25", FormatNum(3.25))
	assert.Equal(t, "0", FormatNum(0))
}

func TestFmt2(t *testing.T) {
	assert.Equal(t, "3.00", Fmt2(3))
	assert.Equal(t, "0.50", Fmt2(0.5))
}

func TestDaysOfMonth(t *testing.T) {
	mar := DaysOfMonth(2025, 3)
	assert.Len(t, mar, 31)
	assert.Equal(t, "2025-03-01", mar[0])
	assert.Equal(t, "2025-03-31", mar[30])

	feb := DaysOfMonth(2024, 2) // leap year
	assert.Len(t, feb, 29)

	feb25 := DaysOfMonth(2025, 2)
	assert.Len(t, feb25, 28)
}
