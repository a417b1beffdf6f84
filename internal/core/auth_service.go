package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"attendance.service/internal/core/model"
	"attendance.service/internal/ports/repository"
)

// AuthService registers users and verifies credentials. Login semantics are
// intentionally plain email+password; only the stored form is a bcrypt hash.
type AuthService struct {
	users    repository.UserRepository
	sessions *SessionManager
}

// NewAuthService wires the auth service to the user store and the session
// manager it hands sessions to.
func NewAuthService(users repository.UserRepository, sessions *SessionManager) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// RegisterRequest carries the sign-up form fields.
type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	DNI       string
}

// Register creates a new active employee account.
func (a *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &model.User{
		ID:             uuid.NewString(),
		Email:          email,
		CredentialHash: string(hash),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DNI:            req.DNI,
		Role:           model.RoleEmployee,
		Active:         true,
		RegisteredAt:   time.Now().UTC(),
	}

	if err := a.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and starts a session. Unknown email, wrong
// password and deactivated accounts all come back as ErrInvalidCredentials.
func (a *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := a.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil || !user.Active {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.CredentialHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return a.sessions.Start(user), nil
}

// Logout ends the session with the given token. Ending an unknown session
// is a no-op.
func (a *AuthService) Logout(token string) {
	a.sessions.End(token)
}
