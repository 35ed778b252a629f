package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	apperrors "hubsite/internal/errors"
)

func TestParseBookingDates(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid range", start: "2024-01-01", end: "2024-01-03"},
		{name: "same day", start: "2024-01-01", end: "2024-01-01"},
		{name: "end before start", start: "2024-01-05", end: "2024-01-01", wantErr: true},
		{name: "malformed start", start: "not-a-date", end: "2024-01-03", wantErr: true},
		{name: "malformed end", start: "2024-01-01", end: "01/03/2024", wantErr: true},
		{name: "impossible calendar date", start: "2024-02-31", end: "2024-03-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseBookingDates(tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPriceBooking(t *testing.T) {
	tests := []struct {
		name        string
		pricePerDay int64
		start       string
		end         string
		wantTotal   int64
	}{
		{name: "three inclusive days", pricePerDay: 900, start: "2024-01-01", end: "2024-01-03", wantTotal: 2700},
		{name: "same day counts as one", pricePerDay: 500, start: "2024-01-01", end: "2024-01-01", wantTotal: 500},
		{name: "across month boundary", pricePerDay: 100, start: "2024-01-31", end: "2024-02-02", wantTotal: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseBookingDates(tt.start, tt.end)
			assert.NoError(t, err)

			total := PriceBooking(decimal.NewFromInt(tt.pricePerDay), start, end)
			assert.True(t, decimal.NewFromInt(tt.wantTotal).Equal(total),
				"want %d, got %s", tt.wantTotal, total)
		})
	}
}
