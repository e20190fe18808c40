package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "cloudstay/internal/errors"
	"cloudstay/internal/logger"
	"cloudstay/internal/model"
	"cloudstay/internal/notify"
	"cloudstay/internal/repository"
)

// SignInResult is either the untouched existing user or the store acknowledgement
// of a write. Exactly one field is set.
type SignInResult struct {
	Existing *model.User
	Result   *model.UpdateResult
}

// UserService exposes user operations.
type UserService interface {
	SignIn(ctx context.Context, user *model.User) (*SignInResult, error)
	GetUser(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, email string, update model.UserUpdate) (*model.UpdateResult, error)
}

type userService struct {
	repo     repository.UserRepository
	notifier notify.Notifier
	now      func() time.Time
}

// NewUserService builds a UserService. A nil notifier disables notifications.
func NewUserService(repo repository.UserRepository, notifier notify.Notifier) UserService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &userService{repo: repo, notifier: notifier, now: time.Now}
}

// SignIn creates the record on first sign-in. For a known email it only records a
// pending host request; any other sign-in returns the stored record unchanged.
func (s *userService) SignIn(ctx context.Context, user *model.User) (*SignInResult, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		if user.Status != model.StatusRequested {
			return &SignInResult{Existing: existing}, nil
		}
		res, err := s.repo.UpdateFields(ctx, user.Email, map[string]any{"status": model.StatusRequested})
		if err != nil {
			return nil, fmt.Errorf("request host role: %w", err)
		}
		logger.InfoContext(ctx, "host role requested", "email", user.Email)
		return &SignInResult{Result: res}, nil
	case !errors.Is(err, apperrors.ErrUserNotFound):
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Only an admin grants host or admin.
	if model.ParseRole(user.Role) != model.RoleGuest {
		user.Role = ""
	}
	user.ID = ""
	user.Timestamp = s.now().UnixMilli()

	res, err := s.repo.Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	logger.InfoContext(ctx, "user created", "email", user.Email)

	notify.Send(ctx, s.notifier, notify.Event{Type: notify.EventWelcome}, notify.Recipient{Email: user.Email, Name: user.Name})
	return &SignInResult{Result: res}, nil
}

// GetUser returns nil without error when no record exists.
func (s *userService) GetUser(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// UpdateUser overwrites the given fields and stamps the record with the current time.
func (s *userService) UpdateUser(ctx context.Context, email string, update model.UserUpdate) (*model.UpdateResult, error) {
	fields := update.Fields()
	fields["timestamp"] = s.now().UnixMilli()

	res, err := s.repo.UpdateFields(ctx, email, fields)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	logger.InfoContext(ctx, "user updated", "email", email, "matched", res.MatchedCount)
	return res, nil
}
