package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStayOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   string
		aEnd     string
		bStart   string
		bEnd     string
		overlaps bool
	}{
		{"identical intervals", "2026-03-10", "2026-03-12", "2026-03-10", "2026-03-12", true},
		{"partial overlap", "2026-03-10", "2026-03-12", "2026-03-11", "2026-03-13", true},
		{"contained interval", "2026-03-10", "2026-03-20", "2026-03-12", "2026-03-14", true},
		{"single shared night", "2026-03-10", "2026-03-12", "2026-03-11", "2026-03-12", true},
		// Выезд в день заезда следующего гостя - не конфликт
		{"back to back stays", "2026-03-10", "2026-03-12", "2026-03-12", "2026-03-14", false},
		{"back to back reversed", "2026-03-12", "2026-03-14", "2026-03-10", "2026-03-12", false},
		{"fully disjoint", "2026-03-10", "2026-03-12", "2026-03-20", "2026-03-22", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StayOverlaps(date(tt.aStart), date(tt.aEnd), date(tt.bStart), date(tt.bEnd))
			assert.Equal(t, tt.overlaps, got)

			// Пересечение симметрично
			sym := StayOverlaps(date(tt.bStart), date(tt.bEnd), date(tt.aStart), date(tt.aEnd))
			assert.Equal(t, tt.overlaps, sym)
		})
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, Nights(date("2026-03-10"), date("2026-03-11")))
	assert.Equal(t, 2, Nights(date("2026-03-10"), date("2026-03-12")))
	assert.Equal(t, 31, Nights(date("2026-03-01"), date("2026-04-01")))
}

func TestNights_IgnoresTimeOfDay(t *testing.T) {
	checkIn := date("2026-03-10").Add(23 * time.Hour)
	checkOut := date("2026-03-12").Add(1 * time.Hour)
	assert.Equal(t, 2, Nights(checkIn, checkOut))
}

func TestValidateStay(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  bool
	}{
		{"valid stay", date("2026-03-10"), date("2026-03-12"), false},
		{"single night", date("2026-03-10"), date("2026-03-11"), false},
		{"check-out equals check-in", date("2026-03-10"), date("2026-03-10"), true},
		{"check-out before check-in", date("2026-03-12"), date("2026-03-10"), true},
		{"zero check-in", time.Time{}, date("2026-03-12"), true},
		{"zero check-out", date("2026-03-10"), time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStay(tt.checkIn, tt.checkOut)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	withTime := time.Date(2026, 3, 10, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, date("2026-03-10"), DateOnly(withTime))
}
