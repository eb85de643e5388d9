package repository

import (
	"time"

	"gorm.io/gorm"

	"lexdesk/internal/model"
)

type MeetingRepository interface {
	Create(meeting *model.Meeting, attendeeIDs []uint) error
	List(from, to *time.Time) ([]model.Meeting, error)
	CountBetween(from, to time.Time) (int64, error)
}

type meetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) Create(meeting *model.Meeting, attendeeIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meeting).Error; err != nil {
			return err
		}
		if len(attendeeIDs) == 0 {
			return nil
		}
		var attendees []model.User
		if err := tx.Find(&attendees, attendeeIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(meeting).Association("Attendees").Append(&attendees); err != nil {
			return err
		}
		meeting.Attendees = attendees
		return nil
	})
}

func (r *meetingRepository) List(from, to *time.Time) ([]model.Meeting, error) {
	q := r.db.Preload("Organizer").Preload("Attendees").Order("scheduled_at")
	if from != nil {
		q = q.Where("scheduled_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("scheduled_at < ?", *to)
	}
	var meetings []model.Meeting
	if err := q.Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *meetingRepository) CountBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Meeting{}).
		Where("scheduled_at >= ? AND scheduled_at < ?", from, to).
		Count(&count).Error
	return count, err
}
