package user

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrUserExists    = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrEmptyUsername = errors.New("username is empty")
)

// User represents a registered user in the system
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Database stores users keyed by username.
// GetUserByUsername returns nil, nil when the user does not exist.
// CreateUser returns ErrUserExists for a duplicate username and leaves the
// existing entry unchanged.
type Database interface {
	GetUserByUsername(username string) (*User, error)
	CreateUser(user *User) error
}

// Manager registers users and looks up their email addresses.
type Manager struct {
	db     Database
	logger *zap.Logger
}

func NewManager(db Database, logger *zap.Logger) *Manager {
	return &Manager{
		db:     db,
		logger: logger,
	}
}

// AddUser registers username with email.
func (m *Manager) AddUser(username, email string) error {
	if username == "" {
		return ErrEmptyUsername
	}

	err := m.db.CreateUser(&User{Username: username, Email: email})
	if errors.Is(err, ErrUserExists) {
		m.logger.Warn("Rejected duplicate username", zap.String("username", username))
		return err
	}
	if err != nil {
		return fmt.Errorf("add user %q: %w", username, err)
	}

	m.logger.Debug("Registered user", zap.String("username", username))
	return nil
}

// GetUser returns the email registered for username, or ErrUserNotFound.
func (m *Manager) GetUser(username string) (string, error) {
	u, err := m.db.GetUserByUsername(username)
	if err != nil {
		return "", fmt.Errorf("get user %q: %w", username, err)
	}
	if u == nil {
		return "", ErrUserNotFound
	}
	return u.Email, nil
}
