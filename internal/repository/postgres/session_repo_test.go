package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdebug/quizard/internal/domain"
	"github.com/teamdebug/quizard/internal/repository/postgres"
	"github.com/teamdebug/quizard/internal/testutil"
)

func TestSessionRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewSessionRepository(testDB.DB)
	userRepo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user := newUser("sessions", "sessions@example.com")
	require.NoError(t, userRepo.Create(ctx, user))

	create := func(token string, expiresAt time.Time) {
		t.Helper()
		err := repo.Create(ctx, &domain.Session{
			ID:        uuid.New(),
			UserID:    user.ID,
			Token:     token,
			ExpiresAt: expiresAt,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	t.Run("exists only for unexpired rows", func(t *testing.T) {
		create("live-token", time.Now().Add(time.Hour))
		create("dead-token", time.Now().Add(-time.Hour))

		ok, err := repo.Exists(ctx, "live-token")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, "dead-token")
		require.NoError(t, err)
		assert.False(t, ok, "expired sessions are ignored without a sweep")

		ok, err = repo.Exists(ctx, "never-issued")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete revokes and is idempotent", func(t *testing.T) {
		create("revoke-me", time.Now().Add(time.Hour))

		require.NoError(t, repo.Delete(ctx, "revoke-me"))

		ok, err := repo.Exists(ctx, "revoke-me")
		require.NoError(t, err)
		assert.False(t, ok)

		// Deleting again, or deleting a token that never existed, is fine.
		require.NoError(t, repo.Delete(ctx, "revoke-me"))
		require.NoError(t, repo.Delete(ctx, "never-issued"))
	})

	t.Run("delete expired removes only lapsed rows", func(t *testing.T) {
		create("still-good", time.Now().Add(time.Hour))
		create("lapsed", time.Now().Add(-time.Minute))

		require.NoError(t, repo.DeleteExpired(ctx))

		ok, err := repo.Exists(ctx, "still-good")
		require.NoError(t, err)
		assert.True(t, ok)

		var count int64
		require.NoError(t, testDB.DB.Model(&domain.Session{}).Where("token = ?", "lapsed").Count(&count).Error)
		assert.Zero(t, count)
	})
}
