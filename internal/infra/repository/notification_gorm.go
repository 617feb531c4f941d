package repository

import (
	"context"

	"gorm.io/gorm"

	"datagen/internal/domain/model"
	domainrepo "datagen/internal/repository"
)

type notificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) domainrepo.NotificationRepository {
	return &notificationGormRepository{db: db}
}

// 同一(user, message, status, parent_job_id)が既にあれば何もしない。
func (r *notificationGormRepository) CreateIfAbsent(ctx context.Context, n *model.Notification) (bool, error) {
	var count int64

	tx := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND message = ? AND status = ?", n.UserID, n.Message, n.Status)
	if n.ParentJobID != "" {
		tx = tx.Where("parent_job_id = ?", n.ParentJobID)
	}

	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return false, err
	}
	return true, nil
}

// 新しい順で返す
func (r *notificationGormRepository) ListByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	var items []model.Notification

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *notificationGormRepository) Delete(ctx context.Context, userID string, notificationID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, notificationID).
		Delete(&model.Notification{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}
