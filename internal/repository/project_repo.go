package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lexdesk/internal/model"
)

// Column names a fresh board starts with unless the caller overrides.
var DefaultColumns = []string{"To Do", "In Progress", "In Review", "Done"}

type ProjectRepository interface {
	// Create inserts the project together with its board and columns in
	// one transaction.
	Create(project *model.Project, columnNames []string) error
	GetByID(id uint) (*model.Project, error)
	List() ([]model.Project, error)
	Update(project *model.Project) error
	Delete(id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project, columnNames []string) error {
	if len(columnNames) == 0 {
		columnNames = DefaultColumns
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		board := &model.Board{ProjectID: project.ID, Name: project.Name}
		if err := tx.Create(board).Error; err != nil {
			return err
		}
		for i, name := range columnNames {
			col := &model.Column{BoardID: board.ID, Name: name, Position: i}
			if err := tx.Create(col).Error; err != nil {
				return err
			}
			board.Columns = append(board.Columns, *col)
		}
		project.Board = *board
		return nil
	})
}

func (r *projectRepository) GetByID(id uint) (*model.Project, error) {
	var project model.Project
	err := r.db.
		Preload("Owner").
		Preload("Board").
		Preload("Board.Columns", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Board.Columns.Tickets", func(db *gorm.DB) *gorm.DB { return db.Order("position, id") }).
		Preload("Board.Columns.Tickets.Assignee").
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List() ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.Preload("Owner").Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) Update(project *model.Project) error {
	return r.db.Omit(clause.Associations).Save(project).Error
}

func (r *projectRepository) Delete(id uint) error {
	return r.db.Delete(&model.Project{}, id).Error
}
