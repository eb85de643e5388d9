package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lexdesk/internal/model"
	"lexdesk/internal/repository"
)

// NotificationService builds and stores per-user notifications and,
// when asked, mirrors them by email through the mail queue.
type NotificationService struct {
	repo    repository.NotificationRepository
	mail    *MailService
	baseURL string
}

func NewNotificationService(repo repository.NotificationRepository, mail *MailService, baseURL string) *NotificationService {
	return &NotificationService{repo: repo, mail: mail, baseURL: baseURL}
}

// Notify creates the notification record for user. The record is
// persisted regardless of email outcome; email trouble is logged by
// the mail layer and never reaches the caller.
func (s *NotificationService) Notify(ctx context.Context, user *model.User, notifType string, data map[string]any, sendEmail bool) (*model.Notification, error) {
	title, message, link := s.buildContent(notifType, data)

	n := &model.Notification{
		UserID:  user.ID,
		Type:    notifType,
		Title:   title,
		Message: message,
		Link:    link,
	}
	if len(data) > 0 {
		if raw, err := json.Marshal(data); err == nil {
			n.Data = datatypes.JSON(raw)
		}
	}
	if err := s.repo.Create(n); err != nil {
		return nil, err
	}

	if sendEmail {
		s.mail.EnqueueNotificationEmail(ctx, user.Email, n, data)
	}
	return n, nil
}

// buildContent maps a type to its fixed title/message/link template.
// Unrecognized types yield empty strings, not an error.
func (s *NotificationService) buildContent(notifType string, data map[string]any) (title, message, link string) {
	switch notifType {
	case model.NotifyTicketAssigned:
		title = "Ticket assigned"
		message = fmt.Sprintf("Ticket %q has been assigned to you by %s", field(data, "title"), field(data, "assignedBy", "name"))
		link = s.ticketLink(data)
	case model.NotifyTicketMentioned:
		title = "You were mentioned"
		message = fmt.Sprintf("%s mentioned you in ticket %q", field(data, "mentionedBy", "name"), field(data, "title"))
		link = s.ticketLink(data)
	case model.NotifyTicketStatusChange:
		title = "Ticket status changed"
		message = fmt.Sprintf("Ticket %q moved to %s", field(data, "title"), field(data, "status"))
		link = s.ticketLink(data)
	case model.NotifyMeetingScheduled:
		title = "Meeting scheduled"
		message = fmt.Sprintf("Meeting %q has been scheduled for %s", field(data, "title"), field(data, "time"))
		link = s.baseURL + "/meetings"
	case model.NotifyMeetingReminder:
		title = "Meeting reminder"
		message = fmt.Sprintf("Reminder: meeting %q starts at %s", field(data, "title"), field(data, "time"))
		link = s.baseURL + "/meetings"
	case model.NotifyProjectCreated:
		title = "New project"
		message = fmt.Sprintf("Project %q was created by %s", field(data, "name"), field(data, "createdBy", "name"))
		if id := field(data, "projectId"); id != "" {
			link = s.baseURL + "/projects/" + id
		}
	case model.NotifyDocumentShared:
		title = "Document shared"
		message = fmt.Sprintf("%s shared %q with you", field(data, "sharedBy", "name"), field(data, "title"))
		if id := field(data, "articleId"); id != "" {
			link = s.baseURL + "/articles/" + id
		}
	}
	return title, message, link
}

func (s *NotificationService) ticketLink(data map[string]any) string {
	if id := field(data, "ticketId"); id != "" {
		return s.baseURL + "/tickets/" + id
	}
	return ""
}

func (s *NotificationService) ListForUser(userID uint) ([]model.Notification, error) {
	return s.repo.ListByUser(userID)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.repo.CountUnread(userID)
}

// MarkRead flips one notification to read, only for its owner.
func (s *NotificationService) MarkRead(userID, notifID uint) error {
	n, err := s.repo.GetByID(notifID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return ErrForbidden
	}
	return s.repo.MarkRead(notifID)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.repo.MarkAllRead(userID)
}
