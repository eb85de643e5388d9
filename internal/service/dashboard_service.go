package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"lexdesk/internal/dto"
	"lexdesk/internal/model"
	"lexdesk/internal/repository"
)

const statsCacheTTL = 60 * time.Second

type DashboardService struct {
	db            *gorm.DB
	redis         *redis.Client
	meetings      repository.MeetingRepository
	notifications repository.NotificationRepository
}

func NewDashboardService(db *gorm.DB, rdb *redis.Client, meetings repository.MeetingRepository, notifications repository.NotificationRepository) *DashboardService {
	return &DashboardService{db: db, redis: rdb, meetings: meetings, notifications: notifications}
}

// Stats returns dashboard counts, cached per user for a minute. Cache
// trouble degrades to a direct query.
func (s *DashboardService) Stats(ctx context.Context, userID uint) (*dto.DashboardStats, error) {
	key := fmt.Sprintf("dashboard:stats:%d", userID)
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, key).Result(); err == nil {
			var cached dto.DashboardStats
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	stats, err := s.compute(userID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if raw, err := json.Marshal(stats); err == nil {
			s.redis.Set(ctx, key, raw, statsCacheTTL)
		}
	}
	return stats, nil
}

func (s *DashboardService) compute(userID uint) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	if err := s.db.Model(&model.Project{}).
		Where("status <> ?", model.ProjectStatusArchived).
		Count(&stats.Projects).Error; err != nil {
		return nil, err
	}

	// Open = not sitting in a "Done" column.
	if err := s.db.Model(&model.Ticket{}).
		Joins("JOIN columns ON columns.id = tickets.column_id").
		Where("columns.name <> ?", "Done").
		Count(&stats.OpenTickets).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	weekStart := now.Truncate(24 * time.Hour).AddDate(0, 0, -int(now.Weekday()))
	count, err := s.meetings.CountBetween(weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	stats.MeetingsThisWeek = count

	if userID != 0 {
		unread, err := s.notifications.CountUnread(userID)
		if err != nil {
			return nil, err
		}
		stats.UnreadCount = unread
	}
	return stats, nil
}
