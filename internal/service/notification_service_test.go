package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexdesk/internal/conf"
	"lexdesk/internal/model"
	"lexdesk/internal/permission"
	"lexdesk/internal/repository"
	"lexdesk/internal/testutil"
)

func newNotifyFixture(t *testing.T) (*NotificationService, *model.User, *model.User) {
	db := testutil.NewTestDB(t)
	repo := repository.NewNotificationRepository(db)
	mail := NewMailService(conf.MailConfig{Enabled: false}, nil)
	svc := NewNotificationService(repo, mail, "http://localhost:8080")

	ann := testutil.SeedUser(t, db, "ann", permission.RolePartner)
	bob := testutil.SeedUser(t, db, "bob", permission.RoleAssociate)
	return svc, ann, bob
}

func TestNotifyTicketAssignedTemplate(t *testing.T) {
	svc, ann, _ := newNotifyFixture(t)

	n, err := svc.Notify(context.Background(), ann, model.NotifyTicketAssigned, map[string]any{
		"title":      "Fix bug",
		"ticketId":   "12",
		"assignedBy": map[string]any{"name": "Ann"},
	}, true)
	require.NoError(t, err)

	assert.Equal(t, "Ticket assigned", n.Title)
	assert.Equal(t, `Ticket "Fix bug" has been assigned to you by Ann`, n.Message)
	assert.Equal(t, "http://localhost:8080/tickets/12", n.Link)
	assert.Nil(t, n.ReadAt, "fresh notification must be unread")
}

func TestNotifyTemplates(t *testing.T) {
	svc, ann, _ := newNotifyFixture(t)

	cases := []struct {
		notifType string
		data      map[string]any
		message   string
	}{
		{
			model.NotifyTicketMentioned,
			map[string]any{"title": "Fix bug", "mentionedBy": map[string]any{"name": "Bob"}},
			`Bob mentioned you in ticket "Fix bug"`,
		},
		{
			model.NotifyTicketStatusChange,
			map[string]any{"title": "Fix bug", "status": "Done"},
			`Ticket "Fix bug" moved to Done`,
		},
		{
			model.NotifyMeetingScheduled,
			map[string]any{"title": "Case review", "time": "Mon, 01 Sep 2025 10:00:00 UTC"},
			`Meeting "Case review" has been scheduled for Mon, 01 Sep 2025 10:00:00 UTC`,
		},
		{
			model.NotifyMeetingReminder,
			map[string]any{"title": "Case review", "time": "10:00"},
			`Reminder: meeting "Case review" starts at 10:00`,
		},
		{
			model.NotifyProjectCreated,
			map[string]any{"name": "Acme v. Baker", "createdBy": map[string]any{"name": "Ann"}},
			`Project "Acme v. Baker" was created by Ann`,
		},
		{
			model.NotifyDocumentShared,
			map[string]any{"title": "Settlement memo", "sharedBy": map[string]any{"name": "Ann"}},
			`Ann shared "Settlement memo" with you`,
		},
	}
	for _, tc := range cases {
		n, err := svc.Notify(context.Background(), ann, tc.notifType, tc.data, false)
		require.NoError(t, err, tc.notifType)
		assert.Equal(t, tc.message, n.Message, tc.notifType)
		assert.NotEmpty(t, n.Title, tc.notifType)
	}
}

func TestNotifyUnknownTypeIsEmptyNotError(t *testing.T) {
	svc, ann, _ := newNotifyFixture(t)

	n, err := svc.Notify(context.Background(), ann, "pager_duty", map[string]any{"x": "y"}, true)
	require.NoError(t, err)
	assert.Empty(t, n.Title)
	assert.Empty(t, n.Message)
}

func TestMarkReadLifecycle(t *testing.T) {
	svc, ann, bob := newNotifyFixture(t)
	ctx := context.Background()

	n, err := svc.Notify(ctx, ann, model.NotifyTicketAssigned, map[string]any{"title": "t"}, false)
	require.NoError(t, err)
	require.Nil(t, n.ReadAt)

	require.NoError(t, svc.MarkRead(ann.ID, n.ID))

	list, err := svc.ListForUser(ann.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].ReadAt)

	// Not the owner: forbidden, and no unknown-id leakage.
	assert.ErrorIs(t, svc.MarkRead(bob.ID, n.ID), ErrForbidden)
	assert.ErrorIs(t, svc.MarkRead(ann.ID, 9999), ErrNotFound)
}

func TestMarkAllReadScopedToUser(t *testing.T) {
	svc, ann, bob := newNotifyFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Notify(ctx, ann, model.NotifyTicketAssigned, map[string]any{"title": "t"}, false)
		require.NoError(t, err)
	}
	_, err := svc.Notify(ctx, bob, model.NotifyTicketAssigned, map[string]any{"title": "t"}, false)
	require.NoError(t, err)

	require.NoError(t, svc.MarkAllRead(ann.ID))

	annUnread, err := svc.UnreadCount(ann.ID)
	require.NoError(t, err)
	assert.Zero(t, annUnread)

	bobUnread, err := svc.UnreadCount(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bobUnread)
}

func TestNotifyPersistsWhenEmailDisabled(t *testing.T) {
	// sendEmail=true with mail disabled: the record is still created
	// and no error surfaces.
	svc, ann, _ := newNotifyFixture(t)

	n, err := svc.Notify(context.Background(), ann, model.NotifyTicketAssigned, map[string]any{
		"title":      "Fix bug",
		"assignedBy": map[string]any{"name": "Ann"},
	}, true)
	require.NoError(t, err)
	assert.NotZero(t, n.ID)

	unread, err := svc.UnreadCount(ann.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}
