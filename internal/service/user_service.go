package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dashgate/internal/db/ent"
	"dashgate/internal/logging"
	"dashgate/internal/repository"
)

// InactiveThreshold is how long a user may stay idle before showing up in
// the inactive-user cleanup listing.
const InactiveThreshold = 2 // months

// UserService handles user administration and the inactive-user cleanup.
type UserService interface {
	// List returns all users, optionally filtered by term and role and
	// ordered by a sort key.
	List(ctx context.Context, term, role, sortKey string) ([]*ent.User, error)
	// Create creates a user. Name, email and role are required; team is
	// optional, teamless users resolve to an individual email scope.
	Create(ctx context.Context, name, email, role, team string) (*ent.User, error)
	// Update rewrites a user's editable fields.
	Update(ctx context.Context, id uint32, name, email, role, team string) (*ent.User, error)
	// Delete hard-deletes a user.
	Delete(ctx context.Context, id uint32) error
	// ListInactive returns users idle for more than InactiveThreshold months.
	ListInactive(ctx context.Context) ([]*ent.User, error)
	// DeleteAllInactive removes every inactive user, one delete at a time,
	// and returns how many were removed. Individual failures are logged and
	// skipped so one broken record does not abort the sweep.
	DeleteAllInactive(ctx context.Context) (int, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService instance
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) List(ctx context.Context, term, role, sortKey string) ([]*ent.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return []*ent.User{}, fmt.Errorf("failed to list users: %w", err)
	}

	users = FilterUsers(users, term, role)
	SortUsers(users, sortKey)
	return users, nil
}

func (s *userService) Create(ctx context.Context, name, email, role, team string) (*ent.User, error) {
	if err := validateUserFields(name, email, role); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email %q already registered", ErrConflict, email)
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	return s.userRepo.Create(ctx, name, email, role, team)
}

func (s *userService) Update(ctx context.Context, id uint32, name, email, role, team string) (*ent.User, error) {
	if err := validateUserFields(name, email, role); err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing.ID != id {
		return nil, fmt.Errorf("%w: email %q already registered", ErrConflict, email)
	} else if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	return s.userRepo.Update(ctx, id, name, email, role, team)
}

func (s *userService) Delete(ctx context.Context, id uint32) error {
	if _, err := s.userRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) ListInactive(ctx context.Context) ([]*ent.User, error) {
	cutoff := time.Now().AddDate(0, -InactiveThreshold, 0)
	users, err := s.userRepo.ListInactiveSince(ctx, cutoff)
	if err != nil {
		return []*ent.User{}, fmt.Errorf("failed to list inactive users: %w", err)
	}
	return users, nil
}

func (s *userService) DeleteAllInactive(ctx context.Context) (int, error) {
	users, err := s.ListInactive(ctx)
	if err != nil {
		return 0, err
	}

	logger := logging.GetGlobalLogger()
	deleted := 0
	for _, u := range users {
		if err := s.userRepo.Delete(ctx, u.ID); err != nil {
			logger.Warn("Failed to delete inactive user %d (%s): %v", u.ID, u.Email, err)
			continue
		}
		deleted++
	}
	return deleted, nil
}

func validateUserFields(name, email, role string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if role != string(RoleAdmin) && role != string(RoleUser) {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	return nil
}
