package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lexdesk/internal/data"
	"lexdesk/internal/model"
)

// NewTestDB opens a fresh in-memory sqlite database with the full
// schema migrated. Each call gets its own database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := data.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// SeedUser inserts a user with sensible defaults.
func SeedUser(t *testing.T, db *gorm.DB, username, role string) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		PasswordHash: "x",
		Email:        username + "@example.com",
		Name:         username,
		Role:         role,
		Status:       model.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

// SeedBoard creates a project with a board and the given columns,
// returning the columns in order.
func SeedBoard(t *testing.T, db *gorm.DB, owner *model.User, columnNames ...string) []model.Column {
	t.Helper()
	project := &model.Project{Name: "Test Matter", OwnerID: owner.ID, Status: model.ProjectStatusActive}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	board := &model.Board{ProjectID: project.ID, Name: project.Name}
	if err := db.Create(board).Error; err != nil {
		t.Fatalf("seed board: %v", err)
	}
	columns := make([]model.Column, 0, len(columnNames))
	for i, name := range columnNames {
		col := model.Column{BoardID: board.ID, Name: name, Position: i}
		if err := db.Create(&col).Error; err != nil {
			t.Fatalf("seed column %s: %v", name, err)
		}
		columns = append(columns, col)
	}
	return columns
}
