package memory

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Lexv0lk/checkout-store/internal/auth/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	repo := NewUsersRepository()

	created, err := repo.CreateUser(t.Context(), domain.User{ID: "user-1", Name: "Test", Email: "teste@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", created.ID)

	_, err = repo.CreateUser(t.Context(), domain.User{ID: "user-2", Name: "Other", Email: "TESTE@example.com"})
	assert.ErrorIs(t, err, &domain.DuplicateEmailError{})

	user, found, err := repo.TryGetUserByEmail(t.Context(), "Teste@Example.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "user-1", user.ID)

	_, found, err = repo.TryGetUserByID(t.Context(), "user-2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUsersRepository_ConcurrentRegistrationSameEmail(t *testing.T) {
	t.Parallel()
	repo := NewUsersRepository()

	const attempts = 50
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		conflicts atomic.Int32
	)

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateUser(t.Context(), domain.User{ID: fmt.Sprintf("user-%d", i), Email: "race@example.com"})
			if err == nil {
				succeeded.Add(1)
				return
			}
			if assert.ErrorIs(t, err, &domain.DuplicateEmailError{}) {
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(attempts-1), conflicts.Load())
}
