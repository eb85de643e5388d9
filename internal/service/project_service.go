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

type ProjectService struct {
	projects repository.ProjectRepository
	users    repository.UserRepository
	notify   *NotificationService
	activity *ActivityService
}

func NewProjectService(projects repository.ProjectRepository, users repository.UserRepository, notify *NotificationService, activity *ActivityService) *ProjectService {
	return &ProjectService{projects: projects, users: users, notify: notify, activity: activity}
}

// Create sets up the project with its board and default columns,
// records the activity, and notifies the rest of the active team.
func (s *ProjectService) Create(ctx context.Context, actorID uint, req dto.CreateProjectReq) (*model.Project, error) {
	project := &model.Project{
		Name:         req.Name,
		Description:  req.Description,
		MatterNumber: req.MatterNumber,
		Status:       model.ProjectStatusActive,
		OwnerID:      actorID,
	}
	if err := s.projects.Create(project, req.Columns); err != nil {
		return nil, err
	}

	pid := project.ID
	s.activity.Record(actorID, "created", "project", project.ID,
		fmt.Sprintf("created project %q", project.Name), &pid,
		map[string]any{"matter_number": project.MatterNumber})

	actor, _ := s.users.GetByID(actorID)
	data := map[string]any{
		"name":      project.Name,
		"projectId": strconv.FormatUint(uint64(project.ID), 10),
		"createdBy": map[string]any{"name": actorName(actor)},
	}
	users, err := s.users.List()
	if err == nil {
		for i := range users {
			u := &users[i]
			if u.ID == actorID || u.Status != model.UserStatusActive {
				continue
			}
			_, _ = s.notify.Notify(ctx, u, model.NotifyProjectCreated, data, true)
		}
	}
	return project, nil
}

func (s *ProjectService) Get(id uint) (*model.Project, error) {
	project, err := s.projects.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return project, err
}

func (s *ProjectService) List() ([]model.Project, error) {
	return s.projects.List()
}

func (s *ProjectService) Update(id uint, req dto.UpdateProjectReq) (*model.Project, error) {
	project, err := s.projects.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.MatterNumber != nil {
		project.MatterNumber = *req.MatterNumber
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if err := s.projects.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(id uint) error {
	if _, err := s.projects.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return s.projects.Delete(id)
}
