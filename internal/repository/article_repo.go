package repository

import (
	"gorm.io/gorm"

	"lexdesk/internal/model"
)

type ArticleRepository interface {
	Create(article *model.Article) error
	GetByID(id uint) (*model.Article, error)
	List() ([]model.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *model.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*model.Article, error) {
	var article model.Article
	if err := r.db.Preload("Author").First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List() ([]model.Article, error) {
	var articles []model.Article
	if err := r.db.Preload("Author").Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}
