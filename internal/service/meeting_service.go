package service

import (
	"context"
	"fmt"
	"time"

	"lexdesk/internal/dto"
	"lexdesk/internal/model"
	"lexdesk/internal/repository"
)

type MeetingService struct {
	meetings repository.MeetingRepository
	users    repository.UserRepository
	notify   *NotificationService
	activity *ActivityService
}

func NewMeetingService(meetings repository.MeetingRepository, users repository.UserRepository, notify *NotificationService, activity *ActivityService) *MeetingService {
	return &MeetingService{meetings: meetings, users: users, notify: notify, activity: activity}
}

// Create schedules the meeting and notifies every attendee except the
// organizer.
func (s *MeetingService) Create(ctx context.Context, actorID uint, req dto.CreateMeetingReq) (*model.Meeting, error) {
	meeting := &model.Meeting{
		Title:       req.Title,
		Agenda:      req.Agenda,
		Location:    req.Location,
		ScheduledAt: req.ScheduledAt,
		DurationMin: req.DurationMin,
		ProjectID:   req.ProjectID,
		OrganizerID: actorID,
	}
	if meeting.DurationMin <= 0 {
		meeting.DurationMin = 30
	}
	if err := s.meetings.Create(meeting, req.AttendeeIDs); err != nil {
		return nil, err
	}

	s.activity.Record(actorID, "created", "meeting", meeting.ID,
		fmt.Sprintf("scheduled meeting %q", meeting.Title), req.ProjectID,
		map[string]any{"scheduled_at": meeting.ScheduledAt, "duration_min": meeting.DurationMin})

	data := map[string]any{
		"title": meeting.Title,
		"time":  meeting.ScheduledAt.Format(time.RFC1123),
	}
	for i := range meeting.Attendees {
		attendee := &meeting.Attendees[i]
		if attendee.ID == actorID {
			continue
		}
		_, _ = s.notify.Notify(ctx, attendee, model.NotifyMeetingScheduled, data, true)
	}
	return meeting, nil
}

func (s *MeetingService) List(req dto.MeetingListReq) ([]model.Meeting, error) {
	return s.meetings.List(req.From, req.To)
}
