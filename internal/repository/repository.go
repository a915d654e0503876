package repository

import (
	"errors"
	"sync"

	"github.com/Dorrrke/g1-bookstore/internal/domain/models"
)

var ErrUserExists = errors.New("user already exists")

// Repository is the in-memory user registry. Records are only ever appended.
type Repository struct {
	mu    sync.Mutex
	users []models.User
}

func New() *Repository {
	return &Repository{
		users: []models.User{},
	}
}

// InsertUser appends user unless the username is already taken.
// The existence check and the append share one critical section.
func (repo *Repository) InsertUser(user models.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.indexOf(user.Username) >= 0 {
		return ErrUserExists
	}
	repo.users = append(repo.users, user)
	return nil
}

func (repo *Repository) GetUserByLogin(username string) (models.User, bool) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	i := repo.indexOf(username)
	if i < 0 {
		return models.User{}, false
	}
	return repo.users[i], true
}

func (repo *Repository) snapshot() []models.User {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	users := make([]models.User, len(repo.users))
	copy(users, repo.users)
	return users
}

func (repo *Repository) indexOf(username string) int {
	for i, user := range repo.users {
		if user.Username == username {
			return i
		}
	}
	return -1
}
