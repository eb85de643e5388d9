package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lexdesk/internal/conf"
	"lexdesk/internal/middleware"
	"lexdesk/internal/model"
	"lexdesk/internal/permission"
	"lexdesk/internal/repository"
	"lexdesk/internal/service"
	"lexdesk/internal/testutil"
	"lexdesk/internal/utils"
)

type notifTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
	issuer *utils.TokenIssuer
	svc    *service.NotificationService
	ann    *model.User
	bob    *model.User
}

func newNotifEnv(t *testing.T) *notifTestEnv {
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	issuer := utils.NewTokenIssuer("test-secret")
	mail := service.NewMailService(conf.MailConfig{Enabled: false}, nil)
	svc := service.NewNotificationService(repository.NewNotificationRepository(db), mail, "http://localhost:8080")
	h := NewNotificationHandler(svc)

	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.RequireAuth(issuer))
	api.GET("/notifications", h.List)
	api.PATCH("/notifications/:id", h.Patch)

	return &notifTestEnv{
		db:     db,
		router: r,
		issuer: issuer,
		svc:    svc,
		ann:    testutil.SeedUser(t, db, "ann", permission.RolePartner),
		bob:    testutil.SeedUser(t, db, "bob", permission.RoleAssociate),
	}
}

func (e *notifTestEnv) seedUnread(t *testing.T, user *model.User, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := e.svc.Notify(context.Background(), user, model.NotifyTicketAssigned,
			map[string]any{"title": "t", "assignedBy": map[string]any{"name": "x"}}, false)
		require.NoError(t, err)
	}
}

func (e *notifTestEnv) token(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := e.issuer.Generate(user.ID, user.Email, user.Role)
	require.NoError(t, err)
	return token
}

func TestReadAllWithoutTokenRejectsAndMutatesNothing(t *testing.T) {
	env := newNotifEnv(t)
	env.seedUnread(t, env.ann, 2)

	req := httptest.NewRequest(http.MethodPatch, "/api/notifications/read-all", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "error")

	unread, err := env.svc.UnreadCount(env.ann.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)
}

func TestReadAllInvalidToken(t *testing.T) {
	env := newNotifEnv(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/notifications/read-all", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReadAllMarksOnlyCaller(t *testing.T) {
	env := newNotifEnv(t)
	env.seedUnread(t, env.ann, 3)
	env.seedUnread(t, env.bob, 1)

	req := httptest.NewRequest(http.MethodPatch, "/api/notifications/read-all", nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t, env.ann))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	annUnread, err := env.svc.UnreadCount(env.ann.ID)
	require.NoError(t, err)
	assert.Zero(t, annUnread)

	bobUnread, err := env.svc.UnreadCount(env.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bobUnread)
}

func TestReadAllViaCookie(t *testing.T) {
	env := newNotifEnv(t)
	env.seedUnread(t, env.ann, 1)

	req := httptest.NewRequest(http.MethodPatch, "/api/notifications/read-all", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AuthCookie, Value: env.token(t, env.ann)})
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	unread, err := env.svc.UnreadCount(env.ann.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestPatchSingleNotification(t *testing.T) {
	env := newNotifEnv(t)
	env.seedUnread(t, env.ann, 1)

	var n model.Notification
	require.NoError(t, env.db.Where("user_id = ?", env.ann.ID).First(&n).Error)

	// Someone else's token: forbidden, still unread.
	req := httptest.NewRequest(http.MethodPatch, "/api/notifications/"+itoa(n.ID), nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t, env.bob))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Owner: marked read.
	req = httptest.NewRequest(http.MethodPatch, "/api/notifications/"+itoa(n.ID), nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t, env.ann))
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, env.db.First(&n, n.ID).Error)
	assert.NotNil(t, n.ReadAt)
}

func TestListNotifications(t *testing.T) {
	env := newNotifEnv(t)
	env.seedUnread(t, env.ann, 2)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t, env.ann))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unread":2`)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
