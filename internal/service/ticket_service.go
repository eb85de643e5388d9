package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"lexdesk/internal/dto"
	"lexdesk/internal/model"
	"lexdesk/internal/repository"
)

type TicketService struct {
	tickets  repository.TicketRepository
	users    repository.UserRepository
	notify   *NotificationService
	activity *ActivityService
}

func NewTicketService(tickets repository.TicketRepository, users repository.UserRepository, notify *NotificationService, activity *ActivityService) *TicketService {
	return &TicketService{tickets: tickets, users: users, notify: notify, activity: activity}
}

// Create inserts the ticket (position allocated in the repository
// transaction), records the activity, and notifies the assignee.
func (s *TicketService) Create(ctx context.Context, actorID uint, req dto.CreateTicketReq) (*model.Ticket, error) {
	if !s.tickets.ColumnExists(req.ColumnID) {
		return nil, ErrNotFound
	}

	ticket := &model.Ticket{
		ColumnID:    req.ColumnID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		ReporterID:  actorID,
	}
	if ticket.Priority == "" {
		ticket.Priority = model.TicketPriorityMedium
	}
	if err := s.tickets.Create(ticket, req.Position); err != nil {
		return nil, err
	}

	s.activity.Record(actorID, "created", "ticket", ticket.ID,
		fmt.Sprintf("created ticket %q", ticket.Title), nil,
		map[string]any{"column_id": ticket.ColumnID, "position": ticket.Position})

	s.notifyAssigned(ctx, actorID, ticket)
	return ticket, nil
}

func (s *TicketService) Get(id uint) (*model.Ticket, error) {
	ticket, err := s.tickets.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return ticket, err
}

func (s *TicketService) List(columnID *uint) ([]model.Ticket, error) {
	return s.tickets.List(columnID)
}

// Update covers field edits, assignment changes, and moves. A move is
// recorded in the activity log and surfaces to the assignee as a
// ticket_status_change notification.
func (s *TicketService) Update(ctx context.Context, actorID uint, id uint, req dto.UpdateTicketReq) (*model.Ticket, error) {
	ticket, err := s.tickets.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// Validate the move destination up front so a bad column_id
	// rejects the whole request before any field edit is persisted.
	move := req.ColumnID != nil || req.Position != nil
	dest := ticket.ColumnID
	if req.ColumnID != nil {
		dest = *req.ColumnID
	}
	crossColumn := dest != ticket.ColumnID
	if crossColumn && !s.tickets.ColumnExists(dest) {
		return nil, ErrNotFound
	}

	assigneeChanged := false
	if req.Title != nil {
		ticket.Title = *req.Title
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.Priority != nil {
		ticket.Priority = *req.Priority
	}
	if req.DueDate != nil {
		ticket.DueDate = req.DueDate
	}
	if req.AssigneeID != nil && (ticket.AssigneeID == nil || *ticket.AssigneeID != *req.AssigneeID) {
		ticket.AssigneeID = req.AssigneeID
		assigneeChanged = true
	}
	if err := s.tickets.Update(ticket); err != nil {
		return nil, err
	}

	if move {
		from := ticket.ColumnID
		moved, err := s.tickets.Move(ticket.ID, dest, req.Position)
		if err != nil {
			return nil, err
		}
		ticket.ColumnID = moved.ColumnID
		ticket.Position = moved.Position

		if crossColumn {
			s.activity.Record(actorID, "moved", "ticket", ticket.ID,
				fmt.Sprintf("moved ticket %q to column %d", ticket.Title, dest), nil,
				map[string]any{"from_column": from, "to_column": dest, "position": ticket.Position})
			s.notifyStatusChange(ctx, actorID, ticket)
		}
	}

	if assigneeChanged {
		s.notifyAssigned(ctx, actorID, ticket)
	}
	return ticket, nil
}

func (s *TicketService) Delete(id uint) error {
	if _, err := s.tickets.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return s.tickets.Delete(id)
}

// AddComment stores the comment and notifies mentioned users.
func (s *TicketService) AddComment(ctx context.Context, actorID uint, ticketID uint, req dto.CreateCommentReq) (*model.Comment, error) {
	ticket, err := s.tickets.GetByID(ticketID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{TicketID: ticket.ID, AuthorID: actorID, Body: req.Body}
	if err := s.tickets.AddComment(comment); err != nil {
		return nil, err
	}

	actor, _ := s.users.GetByID(actorID)
	for _, userID := range req.Mentions {
		if userID == actorID {
			continue
		}
		mentioned, err := s.users.GetByID(userID)
		if err != nil {
			continue
		}
		data := map[string]any{
			"title":       ticket.Title,
			"ticketId":    strconv.FormatUint(uint64(ticket.ID), 10),
			"mentionedBy": map[string]any{"name": actorName(actor)},
		}
		if _, err := s.notify.Notify(ctx, mentioned, model.NotifyTicketMentioned, data, true); err != nil {
			// Per-recipient failures do not fail the comment.
			continue
		}
	}
	return comment, nil
}

func (s *TicketService) notifyAssigned(ctx context.Context, actorID uint, ticket *model.Ticket) {
	if ticket.AssigneeID == nil || *ticket.AssigneeID == actorID {
		return
	}
	assignee, err := s.users.GetByID(*ticket.AssigneeID)
	if err != nil {
		return
	}
	actor, _ := s.users.GetByID(actorID)
	data := map[string]any{
		"title":      ticket.Title,
		"ticketId":   strconv.FormatUint(uint64(ticket.ID), 10),
		"assignedBy": map[string]any{"name": actorName(actor)},
	}
	_, _ = s.notify.Notify(ctx, assignee, model.NotifyTicketAssigned, data, true)
}

func (s *TicketService) notifyStatusChange(ctx context.Context, actorID uint, ticket *model.Ticket) {
	if ticket.AssigneeID == nil || *ticket.AssigneeID == actorID {
		return
	}
	assignee, err := s.users.GetByID(*ticket.AssigneeID)
	if err != nil {
		return
	}
	status := strconv.FormatUint(uint64(ticket.ColumnID), 10)
	if name, err := s.tickets.ColumnName(ticket.ColumnID); err == nil {
		status = name
	}
	data := map[string]any{
		"title":    ticket.Title,
		"ticketId": strconv.FormatUint(uint64(ticket.ID), 10),
		"status":   status,
	}
	_, _ = s.notify.Notify(ctx, assignee, model.NotifyTicketStatusChange, data, true)
}

func actorName(u *model.User) string {
	if u == nil {
		return "someone"
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
