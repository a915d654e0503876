package service

import (
	"errors"
	"fmt"

	"github.com/Dorrrke/g1-bookstore/internal/domain/models"
	"github.com/Dorrrke/g1-bookstore/internal/repository"
)

type UserStore interface {
	InsertUser(user models.User) error
	GetUserByLogin(username string) (models.User, bool)
}

// Registration manages the user registry. Credentials are kept in plaintext
// and only checked for presence.
type Registration struct {
	store UserStore
}

func NewRegistration(store UserStore) *Registration {
	return &Registration{store: store}
}

func (r *Registration) Register(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("register: username and password are required: %w", ErrInvalidInput)
	}
	err := r.store.InsertUser(models.User{Username: username, Password: password})
	if errors.Is(err, repository.ErrUserExists) {
		return fmt.Errorf("register %q: %w", username, ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("register %q: %w", username, err)
	}
	return nil
}

// Login checks a username/password pair. No session is created.
func (r *Registration) Login(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("login: username and password are required: %w", ErrInvalidInput)
	}
	user, ok := r.store.GetUserByLogin(username)
	if !ok || user.Password != password {
		return fmt.Errorf("login %q: %w", username, ErrInvalidCredentials)
	}
	return nil
}
