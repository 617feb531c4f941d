package repository

import (
	"context"
	"errors"

	"datagen/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ログインユーザーの保存・取得を約束
type AppUserRepository interface {
	Create(ctx context.Context, user *model.AppUser) error
	FindByUsername(ctx context.Context, username string) (*model.AppUser, error)
	FindByUserID(ctx context.Context, userID string) (*model.AppUser, error)
	Update(ctx context.Context, user *model.AppUser) error
	// トークンのバージョンを＋１
	IncrementTokenVersion(ctx context.Context, userID string) error
}
