package repository

import (
	"context"

	"datagen/internal/domain/model"
)

type NotificationRepository interface {
	// 同一内容が既にあれば保存せず (nil, false) を返す
	CreateIfAbsent(ctx context.Context, n *model.Notification) (created bool, err error)
	// 新しい順
	ListByUser(ctx context.Context, userID string) ([]model.Notification, error)
	// 見つからなければErrNotFound
	Delete(ctx context.Context, userID string, notificationID string) error
}
