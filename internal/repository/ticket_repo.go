package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lexdesk/internal/model"
)

type TicketRepository interface {
	// Create inserts the ticket. When explicitPos is nil the ticket is
	// appended to its column: max(position)+1, empty column -> 0.
	Create(ticket *model.Ticket, explicitPos *int) error
	GetByID(id uint) (*model.Ticket, error)
	List(columnID *uint) ([]model.Ticket, error)
	Update(ticket *model.Ticket) error
	// Move reassigns column and position atomically and returns the
	// stored position.
	Move(ticketID, destColumnID uint, explicitPos *int) (*model.Ticket, error)
	Delete(id uint) error
	AddComment(comment *model.Comment) error
	ColumnExists(id uint) bool
	ColumnName(id uint) (string, error)
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

// lockColumn takes a row lock on the destination column so concurrent
// inserts into it cannot read the same max position. sqlite (used in
// tests) has no FOR UPDATE; its writes serialize on the database lock.
func lockColumn(tx *gorm.DB, columnID uint) (*model.Column, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var col model.Column
	if err := q.First(&col, columnID).Error; err != nil {
		return nil, err
	}
	return &col, nil
}

func maxPosition(tx *gorm.DB, columnID uint) (int, error) {
	// Empty column reads as -1 so the first ticket gets position 0.
	var max int
	err := tx.Model(&model.Ticket{}).
		Where("column_id = ?", columnID).
		Select("COALESCE(MAX(position), -1)").
		Scan(&max).Error
	return max, err
}

func (r *ticketRepository) Create(ticket *model.Ticket, explicitPos *int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockColumn(tx, ticket.ColumnID); err != nil {
			return err
		}
		if explicitPos != nil {
			ticket.Position = *explicitPos
		} else {
			max, err := maxPosition(tx, ticket.ColumnID)
			if err != nil {
				return err
			}
			ticket.Position = max + 1
		}
		return tx.Create(ticket).Error
	})
}

func (r *ticketRepository) GetByID(id uint) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.db.
		Preload("Assignee").
		Preload("Reporter").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Comments.Author").
		First(&ticket, id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) List(columnID *uint) ([]model.Ticket, error) {
	q := r.db.Preload("Assignee").Order("column_id, position, id")
	if columnID != nil {
		q = q.Where("column_id = ?", *columnID)
	}
	var tickets []model.Ticket
	if err := q.Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) Update(ticket *model.Ticket) error {
	// Associations were preloaded for reads; don't write them back.
	return r.db.Omit(clause.Associations).Save(ticket).Error
}

func (r *ticketRepository) Move(ticketID, destColumnID uint, explicitPos *int) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ticket, ticketID).Error; err != nil {
			return err
		}

		if ticket.ColumnID == destColumnID {
			// Same-column reorder: the caller supplies the index and no
			// sibling is renumbered (gap-based ordering).
			if explicitPos == nil {
				return nil
			}
			ticket.Position = *explicitPos
			return tx.Model(&ticket).Update("position", ticket.Position).Error
		}

		if _, err := lockColumn(tx, destColumnID); err != nil {
			return err
		}
		pos := 0
		if explicitPos != nil {
			pos = *explicitPos
		} else {
			max, err := maxPosition(tx, destColumnID)
			if err != nil {
				return err
			}
			pos = max + 1
		}
		ticket.ColumnID = destColumnID
		ticket.Position = pos
		return tx.Model(&ticket).Updates(map[string]any{
			"column_id": destColumnID,
			"position":  pos,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Delete(id uint) error {
	return r.db.Delete(&model.Ticket{}, id).Error
}

func (r *ticketRepository) AddComment(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *ticketRepository) ColumnExists(id uint) bool {
	var count int64
	r.db.Model(&model.Column{}).Where("id = ?", id).Count(&count)
	return count > 0
}

func (r *ticketRepository) ColumnName(id uint) (string, error) {
	var col model.Column
	if err := r.db.Select("name").First(&col, id).Error; err != nil {
		return "", err
	}
	return col.Name, nil
}
