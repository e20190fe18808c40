package repository

import (
	"context"

	"gorm.io/gorm"

	"cloudstay/internal/model"
)

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) (*model.InsertResult, error) {
	booking.ID = ""
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return nil, err
	}
	return &model.InsertResult{Acknowledged: true, InsertedID: booking.ID}, nil
}

func (r *bookingRepository) List(ctx context.Context, filter model.BookingFilter) ([]model.Booking, error) {
	bookings := []model.Booking{}
	if err := r.filtered(ctx, filter).Order("date").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListSales projects bookings down to their date and price.
func (r *bookingRepository) ListSales(ctx context.Context, filter model.BookingFilter) ([]model.Sale, error) {
	sales := []model.Sale{}
	if err := r.filtered(ctx, filter).Select("date", "price").Order("date").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Booking{})
	if res.Error != nil {
		return nil, res.Error
	}
	return &model.DeleteResult{Acknowledged: true, DeletedCount: res.RowsAffected}, nil
}

func (r *bookingRepository) filtered(ctx context.Context, filter model.BookingFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Booking{})
	if filter.GuestEmail != "" {
		q = q.Where("guest_email = ?", filter.GuestEmail)
	}
	if filter.HostEmail != "" {
		q = q.Where("host_email = ?", filter.HostEmail)
	}
	return q
}
