package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	apperrors "hubsite/internal/errors"
	"hubsite/internal/mail"
	"hubsite/internal/model"
	"hubsite/internal/repository"
)

// BookingRequest carries the customer fields of a bike booking form.
type BookingRequest struct {
	CustomerName string
	Email        string
	Phone        string
	StartDate    string
	EndDate      string
}

// BookingService turns booking requests into persisted rentals.
type BookingService interface {
	BookBike(ctx context.Context, bikeID uint, req BookingRequest) (*model.BikeBooking, error)
	GetBooking(ctx context.Context, id uint) (*model.BikeBooking, error)
}

type bookingService struct {
	catalog  CatalogService
	bookings repository.BookingRepository
	mailer   mail.Sink
}

// NewBookingService creates a new booking service.
func NewBookingService(catalog CatalogService, bookings repository.BookingRepository, mailer mail.Sink) BookingService {
	return &bookingService{catalog: catalog, bookings: bookings, mailer: mailer}
}

// BookBike validates the request, persists the booking with its derived
// total, then emails a receipt. Mail failures are logged and swallowed; a
// persisted booking always reports success.
func (s *bookingService) BookBike(ctx context.Context, bikeID uint, req BookingRequest) (*model.BikeBooking, error) {
	if strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.StartDate) == "" ||
		strings.TrimSpace(req.EndDate) == "" {
		return nil, apperrors.ErrMissingFields
	}

	bike, err := s.catalog.GetBike(ctx, bikeID)
	if err != nil {
		return nil, err
	}

	start, end, err := ParseBookingDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	booking := &model.BikeBooking{
		BikeID:       bike.ID,
		CustomerName: strings.TrimSpace(req.CustomerName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		StartDate:    start,
		EndDate:      end,
		TotalPrice:   PriceBooking(bike.PricePerDay, start, end),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	subject := fmt.Sprintf("Booking confirmed: %s", bike.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour rental of %s from %s to %s is confirmed.\nTotal: %s\nReference: %s\n",
		booking.CustomerName,
		bike.Name,
		start.Format(BookingDateLayout),
		end.Format(BookingDateLayout),
		booking.TotalPrice.StringFixed(2),
		booking.Reference,
	)
	if err := s.mailer.Send(booking.Email, subject, body); err != nil {
		log.Printf("booking %s: receipt email failed: %v", booking.Reference, err)
	}

	return booking, nil
}

// GetBooking looks up a booking for the confirmation page.
func (s *bookingService) GetBooking(ctx context.Context, id uint) (*model.BikeBooking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}
