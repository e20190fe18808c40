package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "cloudstay/internal/errors"
	"cloudstay/internal/model"
)

// MockUserFinder is a mock implementation of UserFinder.
type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthenticate(t *testing.T) {
	codec := NewSessionCodec("test-secret")
	token, _, err := codec.Issue(Identity{Email: "a@x.com"})
	require.NoError(t, err)

	ctx, err := Authenticate(context.Background(), codec, token)
	require.NoError(t, err)
	id, ok := IdentityFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", id.Email)

	_, err = Authenticate(context.Background(), codec, "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = Authenticate(context.Background(), codec, token+"x")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestStoreRoleResolver(t *testing.T) {
	users := new(MockUserFinder)
	users.On("FindByEmail", mock.Anything, "host@x.com").Return(&model.User{Email: "host@x.com", Role: "host"}, nil)
	users.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, apperrors.ErrUserNotFound)
	users.On("FindByEmail", mock.Anything, "down@x.com").Return(nil, errors.New("connection refused"))

	resolver := NewRoleResolver(users)

	role, err := resolver.ResolveRole(context.Background(), "host@x.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleHost, role)

	role, err = resolver.ResolveRole(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleNone, role)

	_, err = resolver.ResolveRole(context.Background(), "down@x.com")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrForbidden)

	users.AssertExpectations(t)
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		user     *model.User
		required model.Role
		wantErr  error
	}{
		{"admin passes admin", &model.User{Role: "admin"}, model.RoleAdmin, nil},
		{"host fails admin", &model.User{Role: "host"}, model.RoleAdmin, apperrors.ErrForbidden},
		{"host passes host", &model.User{Role: "host"}, model.RoleHost, nil},
		{"guest fails host", &model.User{Role: "guest"}, model.RoleHost, apperrors.ErrForbidden},
		{"pending request fails host", &model.User{Role: "guest", Status: model.StatusRequested}, model.RoleHost, apperrors.ErrForbidden},
		{"missing record fails host", nil, model.RoleHost, apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserFinder)
			if tt.user == nil {
				users.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, apperrors.ErrUserNotFound)
			} else {
				tt.user.Email = "a@x.com"
				users.On("FindByEmail", mock.Anything, "a@x.com").Return(tt.user, nil)
			}

			ctx := WithIdentity(context.Background(), Identity{Email: "a@x.com"})
			out, err := Authorize(ctx, NewRoleResolver(users), tt.required)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			role, ok := RoleFrom(out)
			assert.True(t, ok)
			assert.Equal(t, tt.required, role)
		})
	}
}

func TestAuthorize_WithoutIdentityFailsClosed(t *testing.T) {
	users := new(MockUserFinder)

	_, err := Authorize(context.Background(), NewRoleResolver(users), model.RoleAdmin)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}
