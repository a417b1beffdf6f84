package core

import (
	"context"
	"strings"
	"testing"

	"attendance.service/internal/core/model"
	"attendance.service/internal/ports/repository"
)

type memUserRepo struct {
	users []model.User
}

func (m *memUserRepo) Create(ctx context.Context, u *model.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	m.users = append(m.users, *u)
	return nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for i := range m.users {
		if m.users[i].Email == strings.ToLower(email) {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Active = active
		}
	}
	return nil
}

func newAuthFixture() (*AuthService, *memUserRepo, *SessionManager) {
	repo := &memUserRepo{}
	sessions := NewSessionManager()
	return NewAuthService(repo, sessions), repo, sessions
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _, sessions := newAuthFixture()
	ctx := context.Background()

	u, err := auth.Register(ctx, RegisterRequest{
		Email:     "Juan@Test.com",
		Password:  "123456",
		FirstName: "Juan",
		LastName:  "Pérez",
		DNI:       "12345678",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "juan@test.com" {
		t.Fatalf("expected lowercased email, got %q", u.Email)
	}
	if u.Role != model.RoleEmployee || !u.Active {
		t.Fatalf("unexpected defaults: %+v", u)
	}
	if u.CredentialHash == "123456" {
		t.Fatalf("password stored in plaintext")
	}

	sess, err := auth.Login(ctx, "juan@test.com", "123456")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got, ok := sessions.Get(sess.Token); !ok || got.User.ID != u.ID {
		t.Fatalf("session not resolvable after login")
	}

	auth.Logout(sess.Token)
	if _, ok := sessions.Get(sess.Token); ok {
		t.Fatalf("session must be destroyed by logout")
	}
}

func TestLoginFailures(t *testing.T) {
	auth, repo, _ := newAuthFixture()
	ctx := context.Background()

	u, err := auth.Register(ctx, RegisterRequest{Email: "ana@test.com", Password: "secreta"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
		setup    func()
	}{
		{name: "unknown email", email: "nadie@test.com", password: "secreta"},
		{name: "wrong password", email: "ana@test.com", password: "incorrecta"},
		{
			name:     "inactive user",
			email:    "ana@test.com",
			password: "secreta",
			setup:    func() { repo.SetActive(ctx, u.ID, false) },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setup != nil {
				tc.setup()
			}
			if _, err := auth.Login(ctx, tc.email, tc.password); err != ErrInvalidCredentials {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := auth.Register(ctx, RegisterRequest{Email: "dup@test.com", Password: "x1"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := auth.Register(ctx, RegisterRequest{Email: "DUP@test.com", Password: "x2"}); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}
