package repository

import (
	"gorm.io/gorm"

	"lexdesk/internal/model"
)

// ActivityRepository only inserts and reads; the log is append-only.
type ActivityRepository interface {
	Create(entry *model.ActivityLog) error
	ListRecent(projectID *uint, limit int) ([]model.ActivityLog, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(entry *model.ActivityLog) error {
	return r.db.Create(entry).Error
}

func (r *activityRepository) ListRecent(projectID *uint, limit int) ([]model.ActivityLog, error) {
	if limit <= 0 {
		limit = 50
	}
	q := r.db.Order("created_at DESC").Limit(limit)
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var entries []model.ActivityLog
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
