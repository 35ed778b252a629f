package service

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "hubsite/internal/errors"
)

// BookingDateLayout is the wire format for rental dates.
const BookingDateLayout = "2006-01-02"

// ParseBookingDates validates and parses a rental date range. The range is
// inclusive on both ends; end before start is rejected.
func ParseBookingDates(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(BookingDateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}
	endDate, err := time.Parse(BookingDateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

// RentalDays counts days in an inclusive range: same-day rental is 1 day.
func RentalDays(start, end time.Time) int64 {
	return int64(end.Sub(start)/(24*time.Hour)) + 1
}

// PriceBooking derives the total for a rental: price per day times the
// inclusive day count.
func PriceBooking(pricePerDay decimal.Decimal, start, end time.Time) decimal.Decimal {
	return pricePerDay.Mul(decimal.NewFromInt(RentalDays(start, end)))
}
