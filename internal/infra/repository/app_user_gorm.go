package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"datagen/internal/domain/model"
	domainrepo "datagen/internal/repository"
)

type appUserGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入する。
func NewAppUserGormRepository(db *gorm.DB) domainrepo.AppUserRepository {
	return &appUserGormRepository{db: db}
}

func (r *appUserGormRepository) Create(ctx context.Context, user *model.AppUser) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}
	return nil
}

// usernameでユーザーを1件取得
func (r *appUserGormRepository) FindByUsername(ctx context.Context, username string) (*model.AppUser, error) {
	var u model.AppUser

	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

func (r *appUserGormRepository) FindByUserID(ctx context.Context, userID string) (*model.AppUser, error) {
	var u model.AppUser

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

func (r *appUserGormRepository) Update(ctx context.Context, user *model.AppUser) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return err
	}
	return nil
}

// token_versionを+1する。
func (r *appUserGormRepository) IncrementTokenVersion(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).
		Model(&model.AppUser{}).
		Where("user_id = ?", userID).
		UpdateColumn("token_version", gorm.Expr("token_version + ?", 1))

	if res.Error != nil {
		return res.Error
	}

	// 0件更新は「対象がない」
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}
