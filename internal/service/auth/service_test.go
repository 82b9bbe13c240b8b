package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shrihari6/medflow-nova/internal/model"
	pkgauth "github.com/Shrihari6/medflow-nova/pkg/auth"
	apperrors "github.com/Shrihari6/medflow-nova/pkg/errors"
	"github.com/Shrihari6/medflow-nova/pkg/security"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, apperrors.NotFound("user", nil)
	}
	return u, nil
}

func (f *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("user", nil)
}

func (f *fakeUserRepo) UpdateLastLogin(context.Context, uuid.UUID, time.Time) error {
	return nil
}

func newTestService(t *testing.T) (*Service, *model.User) {
	t.Helper()

	hasher := security.NewBcryptHasher(4)
	hash, err := hasher.Hash("correct-horse")
	require.NoError(t, err)

	user := &model.User{
		Base:         model.Base{ID: uuid.New()},
		Email:        "staff@hospital.test",
		PasswordHash: hash,
		Role:         model.RoleStaff,
	}
	repo := &fakeUserRepo{users: map[string]*model.User{user.Email: user}}
	jwtSvc := pkgauth.NewJWTService("test-secret", time.Hour)

	return NewService(repo, jwtSvc, hasher), user
}

func TestLoginIssuesTokenWithRole(t *testing.T) {
	svc, user := newTestService(t)

	resp, err := svc.Login(context.Background(), user.Email, "correct-horse")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, model.RoleStaff, resp.User.Role)

	identity, err := svc.ValidateToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, model.RoleStaff, identity.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, user := newTestService(t)

	_, err := svc.Login(context.Background(), user.Email, "wrong")

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody@hospital.test", "whatever")

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ValidateToken(context.Background(), "garbage")

	assert.Error(t, err)
}
