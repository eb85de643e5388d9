package service

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"lexdesk/internal/dto"
	"lexdesk/internal/model"
	"lexdesk/internal/repository"
)

type ArticleService struct {
	articles repository.ArticleRepository
	users    repository.UserRepository
	notify   *NotificationService
}

func NewArticleService(articles repository.ArticleRepository, users repository.UserRepository, notify *NotificationService) *ArticleService {
	return &ArticleService{articles: articles, users: users, notify: notify}
}

// Create stores the article; users named in SharedWith get a
// document_shared notification.
func (s *ArticleService) Create(ctx context.Context, actorID uint, req dto.CreateArticleReq) (*model.Article, error) {
	article := &model.Article{
		Title:     req.Title,
		Body:      req.Body,
		Tags:      req.Tags,
		AuthorID:  actorID,
		ProjectID: req.ProjectID,
	}
	if err := s.articles.Create(article); err != nil {
		return nil, err
	}

	actor, _ := s.users.GetByID(actorID)
	data := map[string]any{
		"title":     article.Title,
		"articleId": strconv.FormatUint(uint64(article.ID), 10),
		"sharedBy":  map[string]any{"name": actorName(actor)},
	}
	for _, userID := range req.SharedWith {
		if userID == actorID {
			continue
		}
		target, err := s.users.GetByID(userID)
		if err != nil {
			continue
		}
		_, _ = s.notify.Notify(ctx, target, model.NotifyDocumentShared, data, true)
	}
	return article, nil
}

func (s *ArticleService) Get(id uint) (*model.Article, error) {
	article, err := s.articles.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return article, err
}

func (s *ArticleService) List() ([]model.Article, error) {
	return s.articles.List()
}
