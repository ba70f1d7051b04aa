package postgres_test

import (
	"context"
	"testing"

	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/repository/postgres"
	"github.com/javi102/league-companion/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user := &domain.User{
		Username:     "ana",
		Email:        "a@x.com",
		PasswordHash: "hashed",
	}

	err := repo.Create(ctx, user)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	got, err := repo.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "hashed", got.PasswordHash)
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "dup", PasswordHash: "x"}))

	err := repo.Create(ctx, &domain.User{Username: "dup", PasswordHash: "y"})
	assert.Error(t, err)
}
