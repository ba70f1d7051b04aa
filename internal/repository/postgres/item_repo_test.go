package postgres_test

import (
	"context"
	"testing"

	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/repository/postgres"
	"github.com/javi102/league-companion/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepository_UpsertByName(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewItemRepository(testDB.DB)
	ctx := context.Background()

	item := &domain.Item{
		Name:     "Long Sword",
		Price:    350,
		ImageURL: strPtr("https://example.com/longsword.png"),
	}
	require.NoError(t, repo.UpsertByName(ctx, item))
	require.NotZero(t, item.ID)
	firstID := item.ID

	// Price change on re-import, same name
	updated := &domain.Item{Name: "Long Sword", Price: 400}
	require.NoError(t, repo.UpsertByName(ctx, updated))
	assert.Equal(t, firstID, updated.ID)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 400, items[0].Price)
	assert.Nil(t, items[0].ImageURL)
}
