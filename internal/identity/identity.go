// Package identity issues and validates user credentials and sessions.
// Registration enforces username/email uniqueness before any account is
// created, and failures are categorized so handlers can show a fixed
// message without revealing more than the category.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"sync"

	"github.com/Drael0/site/internal/domain"
	"github.com/Drael0/site/internal/repository"
	"github.com/Drael0/site/internal/session"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password too short")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	users     repository.UserRepository
	sessions  *session.Store
	adminCode string

	mu          sync.RWMutex
	subscribers []func(userID string)
}

func NewService(users repository.UserRepository, sessions *session.Store, adminCode string) *Service {
	return &Service{
		users:     users,
		sessions:  sessions,
		adminCode: adminCode,
	}
}

// OnSessionChange registers a callback invoked after every identity
// transition: login, registration and logout. userID is empty on logout.
func (s *Service) OnSessionChange(fn func(userID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Service) notify(userID string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fn := range s.subscribers {
		fn(userID)
	}
}

type RegisterInput struct {
	Username  string
	Name      string
	Email     string
	Password  string
	AdminCode string
}

// Register creates the account and opens a session for it. The role is
// fixed at creation: admin if and only if the submitted code matches the
// configured signup code.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, *session.Session, error) {
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, nil, ErrInvalidEmail
	}
	if len(in.Password) < minPasswordLength {
		return nil, nil, ErrWeakPassword
	}

	// Uniqueness is checked before the account is created, so a rejected
	// registration leaves no record behind.
	if _, err := s.users.GetUserByUsername(ctx, in.Username); err == nil {
		return nil, nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.users.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := domain.RoleUser
	if s.adminCode != "" && in.AdminCode == s.adminCode {
		role = domain.RoleAdmin
	}

	user := &domain.User{
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// The unique index is the backstop for the race between the check
		// above and the insert.
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			return nil, nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.notify(user.ID)
	return user, sess, nil
}

// Login authenticates the credentials and opens a session. Both unknown
// email and wrong password map to ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, *session.Session, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, nil, ErrInvalidEmail
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.notify(user.ID)
	return user, sess, nil
}

// Logout destroys the session. User carts are persisted at mutation time,
// so there is nothing else to flush here.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		log.Printf("failed to delete session: %v", err)
		return err
	}

	s.notify("")
	return nil
}

// CurrentUser resolves the session token to its user record.
func (s *Service) CurrentUser(ctx context.Context, token string) (*domain.User, *session.Session, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	if !sess.Authenticated() {
		return nil, sess, nil
	}

	user, err := s.users.GetUser(ctx, sess.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return user, sess, nil
}
