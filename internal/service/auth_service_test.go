package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexdesk/internal/dto"
	"lexdesk/internal/model"
	"lexdesk/internal/permission"
	"lexdesk/internal/repository"
	"lexdesk/internal/testutil"
	"lexdesk/internal/utils"
)

func newAuthFixture(t *testing.T) (AuthService, repository.UserRepository) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	return NewAuthService(repo, utils.NewTokenIssuer("test-secret")), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newAuthFixture(t)

	userID, err := svc.Register(dto.RegisterReq{
		Username: "ann",
		Password: "s3cret-pass",
		Email:    "ann@example.com",
		Name:     "Ann",
	})
	require.NoError(t, err)
	require.NotZero(t, userID)

	// New accounts are pending associates.
	user, err := repo.GetByID(userID)
	require.NoError(t, err)
	assert.Equal(t, permission.RoleAssociate, user.Role)
	assert.Equal(t, model.UserStatusPending, user.Status)

	resp, err := svc.Login(dto.LoginReq{Username: "ann", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, userID, resp.UserID)

	_, err = svc.Login(dto.LoginReq{Username: "ann", Password: "wrong"})
	assert.Error(t, err)
	_, err = svc.Login(dto.LoginReq{Username: "nobody", Password: "s3cret-pass"})
	assert.Error(t, err)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(dto.RegisterReq{Username: "ann", Password: "s3cret-pass", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = svc.Register(dto.RegisterReq{Username: "ann", Password: "other-pass", Email: "b@example.com"})
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(dto.RegisterReq{Username: "ann", Password: "s3cret-pass", Email: "ann@example.com"})
	require.NoError(t, err)
	_, err = svc.Register(dto.RegisterReq{Username: "bob", Password: "other-pass", Email: "ann@example.com"})
	assert.Error(t, err)
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, repo := newAuthFixture(t)

	userID, err := svc.Register(dto.RegisterReq{Username: "ann", Password: "s3cret-pass", Email: "a@example.com"})
	require.NoError(t, err)
	user, err := repo.GetByID(userID)
	require.NoError(t, err)
	user.Status = model.UserStatusInactive
	require.NoError(t, repo.Update(user))

	_, err = svc.Login(dto.LoginReq{Username: "ann", Password: "s3cret-pass"})
	assert.Error(t, err)
}

func TestSessionCarriesPermissions(t *testing.T) {
	svc, repo := newAuthFixture(t)

	userID, err := svc.Register(dto.RegisterReq{Username: "ann", Password: "s3cret-pass", Email: "a@example.com"})
	require.NoError(t, err)
	user, err := repo.GetByID(userID)
	require.NoError(t, err)
	user.Role = permission.RolePartner
	require.NoError(t, repo.Update(user))

	session, err := svc.Session(userID)
	require.NoError(t, err)
	assert.Equal(t, permission.RolePartner, session.Role)
	assert.ElementsMatch(t, permission.PermissionsFor(permission.RolePartner), session.Permissions)

	_, err = svc.Session(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
