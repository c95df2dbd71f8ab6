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
	"gorm.io/gorm"
)

func newUser(name, email string) *domain.User {
	return &domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: "hashedpassword",
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("first", "dup@example.com")))

	err := repo.Create(ctx, newUser("second", "dup@example.com"))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey, "duplicate email must hit the unique index")
}

func TestUserRepository_GetByEmail_CaseSensitive(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("ana", "Ana@example.com")))

	found, err := repo.GetByEmail(ctx, "Ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ana", found.Name)

	_, err = repo.GetByEmail(ctx, "ana@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "email lookup is case-sensitive")
}

func TestUserRepository_ListActive(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	active := newUser("active", "active@example.com")
	require.NoError(t, repo.Create(ctx, active))

	disabled := newUser("disabled", "disabled@example.com")
	disabled.IsActive = false
	require.NoError(t, repo.Create(ctx, disabled))

	users, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, active.Email, users[0].Email)
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user := newUser("logins", "logins@example.com")
	require.NoError(t, repo.Create(ctx, user))

	fetched, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.LastLoginAt, "last login is nil until first login")

	at := time.Now()
	require.NoError(t, repo.UpdateLastLogin(ctx, user.ID, at))

	fetched, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.LastLoginAt)
	assert.WithinDuration(t, at, *fetched.LastLoginAt, time.Second)
}

func TestUserRepository_SetActive(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user := newUser("toggle", "toggle@example.com")
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.SetActive(ctx, user.ID, false))

	fetched, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)
}
