package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "cloudstay/internal/errors"
	"cloudstay/internal/model"
)

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository.
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *model.Room) (*model.InsertResult, error) {
	room.ID = ""
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		return nil, err
	}
	return &model.InsertResult{Acknowledged: true, InsertedID: room.ID}, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var room model.Room
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) List(ctx context.Context, filter model.RoomFilter) ([]model.Room, error) {
	rooms := []model.Room{}
	if err := r.filtered(ctx, filter).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (*model.UpdateResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var matched int64
	if err := r.db.WithContext(ctx).Model(&model.Room{}).Where("id = ?", id).Count(&matched).Error; err != nil {
		return nil, err
	}
	if matched == 0 || len(fields) == 0 {
		return &model.UpdateResult{Acknowledged: true, MatchedCount: matched}, nil
	}

	res := r.db.WithContext(ctx).Model(&model.Room{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	return &model.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: res.RowsAffected}, nil
}

func (r *roomRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Room{})
	if res.Error != nil {
		return nil, res.Error
	}
	return &model.DeleteResult{Acknowledged: true, DeletedCount: res.RowsAffected}, nil
}

func (r *roomRepository) Count(ctx context.Context, filter model.RoomFilter) (int64, error) {
	var n int64
	if err := r.filtered(ctx, filter).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *roomRepository) filtered(ctx context.Context, filter model.RoomFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Room{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.HostEmail != "" {
		q = q.Where("host_email = ?", filter.HostEmail)
	}
	return q
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrInvalidID
	}
	return nil
}
