package service

import (
	"context"
	"fmt"

	"cloudstay/internal/model"
	"cloudstay/internal/repository"
)

// StatsService builds the dashboard statistics.
type StatsService interface {
	AdminStats(ctx context.Context) (*model.AdminStats, error)
	HostStats(ctx context.Context, email string) (*model.HostStats, error)
	GuestStats(ctx context.Context, email string) (*model.GuestStats, error)
}

type statsService struct {
	users    repository.UserRepository
	rooms    repository.RoomRepository
	bookings repository.BookingRepository
}

// NewStatsService creates a new statistics service.
func NewStatsService(store *repository.Store) StatsService {
	return &statsService{users: store.Users, rooms: store.Rooms, bookings: store.Bookings}
}

func (s *statsService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	sales, err := s.bookings.ListSales(ctx, model.BookingFilter{})
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	totalRooms, err := s.rooms.Count(ctx, model.RoomFilter{})
	if err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	return &model.AdminStats{
		TotalUsers:    totalUsers,
		TotalRooms:    totalRooms,
		TotalBookings: len(sales),
		TotalSales:    model.TotalSales(sales),
		ChartData:     model.NewChartData(sales),
	}, nil
}

func (s *statsService) HostStats(ctx context.Context, email string) (*model.HostStats, error) {
	sales, err := s.bookings.ListSales(ctx, model.BookingFilter{HostEmail: email})
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	totalRooms, err := s.rooms.Count(ctx, model.RoomFilter{HostEmail: email})
	if err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &model.HostStats{
		TotalRooms:    totalRooms,
		TotalBookings: len(sales),
		TotalSales:    model.TotalSales(sales),
		ChartData:     model.NewChartData(sales),
		HostSince:     user.Timestamp,
	}, nil
}

func (s *statsService) GuestStats(ctx context.Context, email string) (*model.GuestStats, error) {
	sales, err := s.bookings.ListSales(ctx, model.BookingFilter{GuestEmail: email})
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &model.GuestStats{
		TotalBookings: len(sales),
		TotalSpent:    model.TotalSales(sales),
		ChartData:     model.NewChartData(sales),
		GuestSince:    user.Timestamp,
	}, nil
}
