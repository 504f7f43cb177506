package users

import (
	"context"

	"neighbornet/internal/core"
	"neighbornet/internal/persistence"
)

type Repository struct {
	DB core.DB
}

func (r *Repository) GetLocation(ctx context.Context, userID int64) (core.Location, error) {
	var location core.Location
	err := r.DB.
		WithContext(ctx).
		Model(&core.UserModel{}).
		Select("latitude, longitude").
		Where("user_id = ?", userID).
		Take(&location).Error

	return location, persistence.Translate(err, "user")
}

func (r *Repository) GetProfile(ctx context.Context, userID int64) (*core.UserModel, error) {
	var user core.UserModel
	err := r.DB.
		WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&user).Error
	if err != nil {
		return nil, persistence.Translate(err, "user")
	}
	return &user, nil
}

func (r *Repository) Exists(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.DB.
		WithContext(ctx).
		Model(&core.UserModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	return count > 0, persistence.Translate(err, "user")
}
