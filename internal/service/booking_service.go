package service

import (
	"context"
	"fmt"
	"time"

	"cloudstay/internal/logger"
	"cloudstay/internal/model"
	"cloudstay/internal/notify"
	"cloudstay/internal/repository"
)

// BookingService exposes booking operations.
type BookingService interface {
	CreateBooking(ctx context.Context, booking *model.Booking) (*model.InsertResult, error)
	ListGuestBookings(ctx context.Context, email string) ([]model.Booking, error)
	ListHostBookings(ctx context.Context, email string) ([]model.Booking, error)
	DeleteBooking(ctx context.Context, id string) (*model.DeleteResult, error)
}

type bookingService struct {
	repo     repository.BookingRepository
	notifier notify.Notifier
	now      func() time.Time
}

// NewBookingService builds a BookingService. A nil notifier disables notifications.
func NewBookingService(repo repository.BookingRepository, notifier notify.Notifier) BookingService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &bookingService{repo: repo, notifier: notifier, now: time.Now}
}

// CreateBooking stores the booking with the guest and host snapshots it was sent
// with, then tells both parties.
func (s *bookingService) CreateBooking(ctx context.Context, booking *model.Booking) (*model.InsertResult, error) {
	if booking.Date.IsZero() {
		booking.Date = s.now()
	}

	res, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	logger.InfoContext(ctx, "booking created",
		"booking_id", res.InsertedID,
		"room_id", booking.RoomID,
		"transaction_id", booking.TransactionID,
	)

	notify.Send(ctx, s.notifier,
		notify.Event{Type: notify.EventBookingConfirmed, Data: map[string]string{"transactionId": booking.TransactionID}},
		notify.Recipient{Email: booking.Guest.Email, Name: booking.Guest.Name},
	)
	notify.Send(ctx, s.notifier,
		notify.Event{Type: notify.EventRoomBooked, Data: map[string]string{"guestName": booking.Guest.Name}},
		notify.Recipient{Email: booking.Host.Email, Name: booking.Host.Name},
	)
	return res, nil
}

func (s *bookingService) ListGuestBookings(ctx context.Context, email string) ([]model.Booking, error) {
	return s.repo.List(ctx, model.BookingFilter{GuestEmail: email})
}

func (s *bookingService) ListHostBookings(ctx context.Context, email string) ([]model.Booking, error) {
	return s.repo.List(ctx, model.BookingFilter{HostEmail: email})
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) (*model.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
