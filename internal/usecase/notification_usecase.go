package usecase

import (
	"context"
	"errors"
	"net/http"

	"datagen/internal/domain/model"
	"datagen/internal/repository"
)

type NotificationListResponse struct {
	Success       bool                 `json:"success"`
	Notifications []model.Notification `json:"notifications"`
	Count         int                  `json:"count"`
}

type NotificationUsecase struct {
	notifications repository.NotificationRepository
}

func NewNotificationUsecase(notifications repository.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notifications: notifications}
}

func (u *NotificationUsecase) ListUnread(ctx context.Context, userID string) (*NotificationListResponse, error) {
	items, err := u.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if items == nil {
		items = []model.Notification{}
	}

	return &NotificationListResponse{
		Success:       true,
		Notifications: items,
		Count:         len(items),
	}, nil
}

func (u *NotificationUsecase) Delete(ctx context.Context, userID string, notificationID string) error {
	err := u.notifications.Delete(ctx, userID, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "notification not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
