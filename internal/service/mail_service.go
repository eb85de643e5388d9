package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"lexdesk/internal/conf"
	"lexdesk/internal/model"
)

// Redis keys shared with the mail worker.
const (
	MailQueueKey      = "mail:queue"
	MailDeadLetterKey = "mail:deadletter"
)

// MailJob is one email to deliver, serialized onto the redis queue.
type MailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Type    string `json:"type"`
}

type MailService struct {
	cfg   conf.MailConfig
	redis *redis.Client
}

func NewMailService(cfg conf.MailConfig, rdb *redis.Client) *MailService {
	return &MailService{cfg: cfg, redis: rdb}
}

func (s *MailService) Enabled() bool { return s.cfg.Enabled }

// Enqueue pushes a job onto the mail queue. Errors are returned so the
// caller can decide to log-and-continue; nothing here fails a request.
func (s *MailService) Enqueue(ctx context.Context, job MailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.redis.RPush(ctx, MailQueueKey, payload).Err()
}

// RenderEmail produces the plain-text subject and body for a
// notification type. Unknown types render empty, mirroring the in-app
// templates.
func (s *MailService) RenderEmail(notifType string, data map[string]any) (subject, body string) {
	switch notifType {
	case model.NotifyTicketAssigned:
		subject = "A ticket was assigned to you"
		body = fmt.Sprintf("Ticket %q has been assigned to you by %s.", field(data, "title"), field(data, "assignedBy", "name"))
	case model.NotifyTicketMentioned:
		subject = "You were mentioned in a ticket"
		body = fmt.Sprintf("%s mentioned you in ticket %q.", field(data, "mentionedBy", "name"), field(data, "title"))
	case model.NotifyTicketStatusChange:
		subject = "Ticket status changed"
		body = fmt.Sprintf("Ticket %q moved to %s.", field(data, "title"), field(data, "status"))
	case model.NotifyMeetingScheduled:
		subject = "Meeting scheduled"
		body = fmt.Sprintf("Meeting %q has been scheduled for %s.", field(data, "title"), field(data, "time"))
	case model.NotifyMeetingReminder:
		subject = "Meeting reminder"
		body = fmt.Sprintf("Reminder: meeting %q starts at %s.", field(data, "title"), field(data, "time"))
	case model.NotifyProjectCreated:
		subject = "New project created"
		body = fmt.Sprintf("Project %q was created by %s.", field(data, "name"), field(data, "createdBy", "name"))
	case model.NotifyDocumentShared:
		subject = "A document was shared with you"
		body = fmt.Sprintf("%s shared %q with you.", field(data, "sharedBy", "name"), field(data, "title"))
	}
	return subject, body
}

// SendTemplate renders and enqueues one email per recipient. Used by
// the send-email endpoint; queue failures are surfaced there because
// the send is the whole point of that request.
func (s *MailService) SendTemplate(ctx context.Context, notifType string, recipients []string, data map[string]any) error {
	subject, body := s.RenderEmail(notifType, data)
	if subject == "" {
		return fmt.Errorf("unknown email type %q", notifType)
	}
	for _, to := range recipients {
		if err := s.Enqueue(ctx, MailJob{To: to, Subject: subject, Body: body, Type: notifType}); err != nil {
			return err
		}
	}
	return nil
}

// EnqueueNotificationEmail mirrors an in-app notification as an email.
// Failures are logged and swallowed: the notification record already
// exists and the request must not fail on mail trouble.
func (s *MailService) EnqueueNotificationEmail(ctx context.Context, to string, n *model.Notification, data map[string]any) {
	if !s.cfg.Enabled || to == "" {
		return
	}
	subject, body := s.RenderEmail(n.Type, data)
	if subject == "" {
		return
	}
	if err := s.Enqueue(ctx, MailJob{To: to, Subject: subject, Body: body, Type: n.Type}); err != nil {
		log.Printf("mail enqueue failed for %s (%s): %v", to, n.Type, err)
	}
}

// field digs a string out of nested template data: field(d, "a", "b")
// reads d["a"]["b"]. Missing keys come back empty.
func field(data map[string]any, path ...string) string {
	cur := any(data)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[key]
	}
	s, _ := cur.(string)
	return s
}
