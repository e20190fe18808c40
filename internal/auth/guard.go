package auth

import (
	"context"
	"errors"
	"fmt"

	apperrors "cloudstay/internal/errors"
	"cloudstay/internal/model"
)

type identityKey struct{}

type roleKey struct{}

// WithIdentity attaches an authenticated identity to ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity attached by Authenticate.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.Email != ""
}

// RoleFrom returns the role resolved by Authorize, if any guard ran.
func RoleFrom(ctx context.Context) (model.Role, bool) {
	role, ok := ctx.Value(roleKey{}).(model.Role)
	return role, ok
}

// Authenticate verifies the session token and returns ctx carrying the identity.
// It knows nothing about roles.
func Authenticate(ctx context.Context, codec *SessionCodec, token string) (context.Context, error) {
	if token == "" {
		return ctx, apperrors.ErrUnauthorized
	}
	id, err := codec.Verify(token)
	if err != nil {
		return ctx, err
	}
	return WithIdentity(ctx, *id), nil
}

// RoleResolver reports the stored role of a user.
type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (model.Role, error)
}

// UserFinder is the read capability role resolution needs from the user store.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// StoreRoleResolver reads the role from the user store on every call.
type StoreRoleResolver struct {
	users UserFinder
}

// NewRoleResolver creates a resolver backed by the user store.
func NewRoleResolver(users UserFinder) *StoreRoleResolver {
	return &StoreRoleResolver{users: users}
}

// ResolveRole returns RoleNone when no record exists for email.
func (r *StoreRoleResolver) ResolveRole(ctx context.Context, email string) (model.Role, error) {
	user, err := r.users.FindByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return model.RoleNone, nil
	}
	if err != nil {
		return model.RoleNone, fmt.Errorf("resolve role: %w", err)
	}
	return user.ResolvedRole(), nil
}

// Authorize requires an identity already on ctx and a resolved role satisfying required.
// Without an identity it fails closed with ErrUnauthorized.
func Authorize(ctx context.Context, resolver RoleResolver, required model.Role) (context.Context, error) {
	id, ok := IdentityFrom(ctx)
	if !ok {
		return ctx, apperrors.ErrUnauthorized
	}
	role, err := resolver.ResolveRole(ctx, id.Email)
	if err != nil {
		return ctx, err
	}
	if !role.Satisfies(required) {
		return ctx, fmt.Errorf("%w: %s requires %s, has %s", apperrors.ErrForbidden, id.Email, required, role)
	}
	return context.WithValue(ctx, roleKey{}, role), nil
}
