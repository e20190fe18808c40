package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "cloudstay/internal/errors"
	"cloudstay/internal/model"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := r.db.WithContext(ctx).Order("timestamp").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Upsert inserts the user or overwrites the profile fields of the existing row.
// MySQL reports one affected row for an insert and two for an update.
func (r *userRepository) Upsert(ctx context.Context, user *model.User) (*model.UpdateResult, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "image", "role", "status", "timestamp"}),
	}).Create(user)
	if res.Error != nil {
		return nil, res.Error
	}

	switch res.RowsAffected {
	case 1:
		return &model.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: user.ID}, nil
	case 0:
		return &model.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
	default:
		return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
}

func (r *userRepository) UpdateFields(ctx context.Context, email string, fields map[string]any) (*model.UpdateResult, error) {
	var matched int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&matched).Error; err != nil {
		return nil, err
	}
	if matched == 0 || len(fields) == 0 {
		return &model.UpdateResult{Acknowledged: true, MatchedCount: matched}, nil
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	return &model.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: res.RowsAffected}, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
