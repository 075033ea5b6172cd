package service

import (
	"context"
	"errors"
	"testing"

	"dashgate/internal/db/ent"
	"dashgate/internal/repository"
)

// Mock AuthRepository
type mockAuthRepository struct {
	repository.AuthRepository
	getByUIDFunc   func(ctx context.Context, firebaseUID string) (*ent.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*ent.User, error)
	attachUIDFunc  func(ctx context.Context, user *ent.User, firebaseUID string) (*ent.User, error)
	createUserFunc func(ctx context.Context, firebaseUID, email, name, photoURL, ip string) (*ent.User, error)
}

func (m *mockAuthRepository) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*ent.User, error) {
	if m.getByUIDFunc != nil {
		return m.getByUIDFunc(ctx, firebaseUID)
	}
	return nil, &ent.NotFoundError{}
}

func (m *mockAuthRepository) GetUserByEmail(ctx context.Context, email string) (*ent.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, &ent.NotFoundError{}
}

func (m *mockAuthRepository) AttachFirebaseUID(ctx context.Context, user *ent.User, firebaseUID string) (*ent.User, error) {
	if m.attachUIDFunc != nil {
		return m.attachUIDFunc(ctx, user, firebaseUID)
	}
	user.FirebaseUID = firebaseUID
	return user, nil
}

func (m *mockAuthRepository) CreateUser(ctx context.Context, firebaseUID, email, name, photoURL, ip string) (*ent.User, error) {
	if m.createUserFunc != nil {
		return m.createUserFunc(ctx, firebaseUID, email, name, photoURL, ip)
	}
	u := newTestUser(1, email, "user", "")
	u.FirebaseUID = firebaseUID
	u.Name = name
	return u, nil
}

func TestResolveUser(t *testing.T) {
	ctx := context.Background()

	t.Run("known uid resolves directly", func(t *testing.T) {
		attached := false
		svc := &authService{authRepo: &mockAuthRepository{
			getByUIDFunc: func(ctx context.Context, firebaseUID string) (*ent.User, error) {
				return newTestUser(4, "ana@example.com", "user", ""), nil
			},
			attachUIDFunc: func(ctx context.Context, user *ent.User, firebaseUID string) (*ent.User, error) {
				attached = true
				return user, nil
			},
		}}

		u, err := svc.resolveUser(ctx, "uid-4", "ana@example.com", "Ana", "", "10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != 4 || attached {
			t.Errorf("got user %+v (attached=%v), want existing record untouched", u, attached)
		}
	})

	t.Run("email match claims the provisioned record", func(t *testing.T) {
		var gotUID string
		svc := &authService{authRepo: &mockAuthRepository{
			getByEmailFunc: func(ctx context.Context, email string) (*ent.User, error) {
				u := newTestUser(7, email, "user", "Finance")
				u.FirebaseUID = "pending:" + email
				return u, nil
			},
			attachUIDFunc: func(ctx context.Context, user *ent.User, firebaseUID string) (*ent.User, error) {
				gotUID = firebaseUID
				user.FirebaseUID = firebaseUID
				return user, nil
			},
		}}

		u, err := svc.resolveUser(ctx, "uid-7", "ted@example.com", "Ted", "", "10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotUID != "uid-7" {
			t.Errorf("attached uid %q, want %q", gotUID, "uid-7")
		}
		if u.ID != 7 || u.FirebaseUID != "uid-7" {
			t.Errorf("unexpected user: %+v", u)
		}
	})

	t.Run("unknown identity creates a user", func(t *testing.T) {
		created := false
		svc := &authService{authRepo: &mockAuthRepository{
			createUserFunc: func(ctx context.Context, firebaseUID, email, name, photoURL, ip string) (*ent.User, error) {
				created = true
				u := newTestUser(9, email, "user", "")
				u.FirebaseUID = firebaseUID
				return u, nil
			},
		}}

		u, err := svc.resolveUser(ctx, "uid-9", "new@example.com", "New", "", "10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created || u.FirebaseUID != "uid-9" {
			t.Errorf("got user %+v (created=%v), want fresh record", u, created)
		}
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		boom := errors.New("connection reset")
		svc := &authService{authRepo: &mockAuthRepository{
			getByEmailFunc: func(ctx context.Context, email string) (*ent.User, error) {
				return nil, boom
			},
		}}

		if _, err := svc.resolveUser(ctx, "uid-1", "ana@example.com", "Ana", "", "10.0.0.1"); !errors.Is(err, boom) {
			t.Errorf("got err %v, want %v", err, boom)
		}
	})
}
