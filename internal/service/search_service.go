package service

import (
	"strings"

	"gorm.io/gorm"

	"lexdesk/internal/dto"
)

// SearchService does substring matching over projects, tickets, and
// articles. LOWER(...) LIKE keeps it portable between postgres and the
// sqlite test databases.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

func (s *SearchService) Search(query string) (*dto.SearchResp, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	resp := &dto.SearchResp{}

	if err := s.db.Where("LOWER(name) LIKE ?", pattern).Limit(20).Find(&resp.Projects).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("LOWER(title) LIKE ?", pattern).Limit(20).Find(&resp.Tickets).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("LOWER(title) LIKE ? OR LOWER(tags) LIKE ?", pattern, pattern).Limit(20).Find(&resp.Articles).Error; err != nil {
		return nil, err
	}
	return resp, nil
}
