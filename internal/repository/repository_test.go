package repository

import (
	"sync"
	"testing"

	"github.com/Dorrrke/g1-bookstore/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertUser(t *testing.T) {
	repo := New()

	require.NoError(t, repo.InsertUser(models.User{Username: "bob", Password: "pw"}))
	err := repo.InsertUser(models.User{Username: "bob", Password: "pw2"})
	assert.ErrorIs(t, err, ErrUserExists)

	user, ok := repo.GetUserByLogin("bob")
	assert.True(t, ok)
	assert.Equal(t, "pw", user.Password)

	_, ok = repo.GetUserByLogin("Bob")
	assert.False(t, ok)
	assert.Len(t, repo.snapshot(), 1)
}

func TestInsertUserConcurrent(t *testing.T) {
	repo := New()
	const workers = 32

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.InsertUser(models.User{Username: "same", Password: "pw"}); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Len(t, repo.snapshot(), 1)
}

func TestSnapshotReturnsCopy(t *testing.T) {
	repo := New()
	require.NoError(t, repo.InsertUser(models.User{Username: "a", Password: "1"}))

	users := repo.snapshot()
	users[0].Username = "changed"

	_, ok := repo.GetUserByLogin("a")
	assert.True(t, ok)
}
