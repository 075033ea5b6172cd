package service

import (
	"context"
	"fmt"
	"time"

	"dashgate/internal/config/firebase"
	"dashgate/internal/db/ent"
	"dashgate/internal/repository"

	"github.com/google/uuid"
)

// AuthService exchanges a verified identity-provider credential for a local
// user record and a server-side session.
type AuthService interface {
	// Login verifies the Firebase ID token, resolves or creates the user
	// record and opens a session. The returned principal carries the
	// resolved entitlement scope.
	Login(ctx context.Context, idToken, userAgent, ip string) (*Principal, *ent.Session, error)
	// Logout invalidates the session identified by token.
	Logout(ctx context.Context, token string) error
	// Resolve returns the principal owning an active session token, updating
	// the session's last-used and the user's last-activity timestamps.
	Resolve(ctx context.Context, token string) (*Principal, *ent.User, error)
}

type authService struct {
	authRepo   repository.AuthRepository
	sessionTTL time.Duration
}

// NewAuthService creates a new AuthService instance
func NewAuthService(authRepo repository.AuthRepository, sessionTTL time.Duration) AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &authService{
		authRepo:   authRepo,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Login(ctx context.Context, idToken, userAgent, ip string) (*Principal, *ent.Session, error) {
	uid, err := firebase.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, nil, fmt.Errorf("token verification failed: %w", err)
	}

	record, err := firebase.GetUserByUID(ctx, uid)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve identity record: %w", err)
	}

	user, err := s.resolveUser(ctx, uid, record.Email, record.DisplayName, record.PhotoURL, ip)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	user, err = s.authRepo.UpdateUserLastLogin(ctx, user, ip)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update last login: %w", err)
	}

	token := uuid.NewString()
	session, err := s.authRepo.CreateSession(ctx, user.ID, token, userAgent, ip, time.Now().Add(s.sessionTTL))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	return ResolvePrincipal(user), session, nil
}

// resolveUser maps a verified identity onto a local user record. Admin-
// provisioned users exist by email before their first SSO login; those are
// claimed by writing the real Firebase UID onto the matched record, so later
// logins resolve by UID even if an admin has since changed the email.
// Unknown identities get a fresh record.
func (s *authService) resolveUser(ctx context.Context, uid, email, name, photoURL, ip string) (*ent.User, error) {
	user, err := s.authRepo.GetUserByFirebaseUID(ctx, uid)
	if !ent.IsNotFound(err) {
		return user, err
	}

	user, err = s.authRepo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return s.authRepo.AttachFirebaseUID(ctx, user, uid)
	case ent.IsNotFound(err):
		return s.authRepo.CreateUser(ctx, uid, email, name, photoURL, ip)
	default:
		return nil, err
	}
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.authRepo.InvalidateSession(ctx, token)
}

func (s *authService) Resolve(ctx context.Context, token string) (*Principal, *ent.User, error) {
	session, err := s.authRepo.GetActiveSessionByToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.authRepo.GetSessionOwner(ctx, session)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.authRepo.UpdateSessionLastUsed(ctx, session, nil); err != nil {
		return nil, nil, err
	}
	if _, err := s.authRepo.UpdateUserLastActivity(ctx, user); err != nil {
		return nil, nil, err
	}

	return ResolvePrincipal(user), user, nil
}
