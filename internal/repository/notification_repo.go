package repository

import (
	"time"

	"gorm.io/gorm"

	"lexdesk/internal/model"
)

type NotificationRepository interface {
	Create(n *model.Notification) error
	GetByID(id uint) (*model.Notification, error)
	ListByUser(userID uint) ([]model.Notification, error)
	CountUnread(userID uint) (int64, error)
	// MarkRead sets read_at once; an already-read notification is left
	// untouched (no un-read transition exists).
	MarkRead(id uint) error
	MarkAllRead(userID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(n *model.Notification) error {
	return r.db.Create(n).Error
}

func (r *notificationRepository) GetByID(id uint) (*model.Notification, error) {
	var n model.Notification
	if err := r.db.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) ListByUser(userID uint) ([]model.Notification, error) {
	var list []model.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(100).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *notificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkRead(id uint) error {
	now := time.Now()
	return r.db.Model(&model.Notification{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", &now).Error
}

func (r *notificationRepository) MarkAllRead(userID uint) error {
	now := time.Now()
	return r.db.Model(&model.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", &now).Error
}
