package service

import (
	"encoding/json"
	"log"

	"lexdesk/internal/model"
	"lexdesk/internal/repository"
)

// ActivityService appends audit entries without ever failing the
// request that triggered them. Record hands the entry to a buffered
// channel drained by one background goroutine; write failures land in
// the server log as dead letters.
type ActivityService struct {
	repo repository.ActivityRepository
	ch   chan *model.ActivityLog
	done chan struct{}
}

func NewActivityService(repo repository.ActivityRepository) *ActivityService {
	s := &ActivityService{
		repo: repo,
		ch:   make(chan *model.ActivityLog, 256),
		done: make(chan struct{}),
	}
	go s.drain()
	return s
}

func (s *ActivityService) drain() {
	defer close(s.done)
	for entry := range s.ch {
		if err := s.repo.Create(entry); err != nil {
			log.Printf("activity dead-letter: actor=%d action=%s %s/%d: %v",
				entry.ActorID, entry.Action, entry.EntityType, entry.EntityID, err)
		}
	}
}

// Record is fire-and-forget. A full buffer drops the entry to the
// dead-letter log instead of blocking the request. meta carries
// structured context alongside the human-readable details and may be
// nil.
func (s *ActivityService) Record(actorID uint, action, entityType string, entityID uint, details string, projectID *uint, meta map[string]any) {
	entry := &model.ActivityLog{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		ProjectID:  projectID,
	}
	if len(meta) > 0 {
		if raw, err := json.Marshal(meta); err == nil {
			entry.Meta = raw
		}
	}
	select {
	case s.ch <- entry:
	default:
		log.Printf("activity dead-letter (buffer full): actor=%d action=%s %s/%d",
			actorID, action, entityType, entityID)
	}
}

func (s *ActivityService) Recent(projectID *uint, limit int) ([]model.ActivityLog, error) {
	return s.repo.ListRecent(projectID, limit)
}

// Close stops the drain goroutine after flushing queued entries.
func (s *ActivityService) Close() {
	close(s.ch)
	<-s.done
}
