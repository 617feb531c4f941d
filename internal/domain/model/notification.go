package model

import "time"

type NotificationStatus string

const (
	NotificationStatusCompleted NotificationStatus = "completed"
	NotificationStatusFailed    NotificationStatus = "failed"
)

// ジョブ完了などをユーザーの受信箱に残す。
// 同一(user, message, status, parent_job_id)は重複保存しない。
type Notification struct {
	// IDは "<user_id>_<unix millis>"
	ID          string             `gorm:"primaryKey" json:"id"`
	UserID      string             `gorm:"not null;index" json:"-"`
	Message     string             `gorm:"not null" json:"message"`
	Status      NotificationStatus `gorm:"type:varchar(20);not null" json:"status"`
	ParentJobID string             `gorm:"index" json:"parent_job_id,omitempty"`
	CreatedAt   time.Time          `json:"timestamp"`
}
