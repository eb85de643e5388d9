package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lexdesk/internal/conf"
	"lexdesk/internal/dto"
	"lexdesk/internal/model"
	"lexdesk/internal/permission"
	"lexdesk/internal/repository"
	"lexdesk/internal/testutil"
)

type articleFixture struct {
	db  *gorm.DB
	svc *ArticleService
	ann *model.User
	bob *model.User
}

func newArticleFixture(t *testing.T) *articleFixture {
	db := testutil.NewTestDB(t)
	ann := testutil.SeedUser(t, db, "ann", permission.RolePartner)
	bob := testutil.SeedUser(t, db, "bob", permission.RoleAssociate)

	mail := NewMailService(conf.MailConfig{Enabled: false}, nil)
	notify := NewNotificationService(repository.NewNotificationRepository(db), mail, "http://localhost:8080")
	svc := NewArticleService(repository.NewArticleRepository(db), repository.NewUserRepository(db), notify)
	return &articleFixture{db: db, svc: svc, ann: ann, bob: bob}
}

func TestCreateArticleNotifiesSharedUsers(t *testing.T) {
	f := newArticleFixture(t)

	article, err := f.svc.Create(context.Background(), f.ann.ID, dto.CreateArticleReq{
		Title:      "Filing checklist",
		Body:       "Steps before filing.",
		Tags:       "litigation,checklist",
		SharedWith: []uint{f.bob.ID, f.ann.ID, 9999},
	})
	require.NoError(t, err)
	require.NotZero(t, article.ID)

	// Only bob: the author and the unknown id are skipped.
	var notifications []model.Notification
	require.NoError(t, f.db.Where("type = ?", model.NotifyDocumentShared).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, f.bob.ID, notifications[0].UserID)
	assert.Equal(t, `ann shared "Filing checklist" with you`, notifications[0].Message)
}

func TestArticleGet(t *testing.T) {
	f := newArticleFixture(t)

	created, err := f.svc.Create(context.Background(), f.ann.ID, dto.CreateArticleReq{Title: "NDA template"})
	require.NoError(t, err)

	got, err := f.svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "NDA template", got.Title)
	assert.Equal(t, f.ann.ID, got.Author.ID)

	_, err = f.svc.Get(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
