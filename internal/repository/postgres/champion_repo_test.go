package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/repository/postgres"
	"github.com/javi102/league-companion/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestChampionRepository_UpsertByName(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	champion := &domain.Champion{
		Name:         "Aatrox",
		Title:        "the Darkin Blade",
		Role:         strPtr("Fighter"),
		Tags:         "Fighter,Tank",
		LastSyncedAt: time.Now(),
	}

	err := repo.UpsertByName(ctx, champion)
	require.NoError(t, err)
	require.NotZero(t, champion.ID)
	firstID := champion.ID

	// Same name again with changed fields must update in place
	updated := &domain.Champion{
		Name:         "Aatrox",
		Title:        "the World Ender",
		Role:         strPtr("Tank"),
		Tags:         "Tank",
		LastSyncedAt: time.Now(),
	}
	err = repo.UpsertByName(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, firstID, updated.ID, "conflict update must return the existing id")

	var count int64
	require.NoError(t, testDB.DB.Model(&domain.Champion{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "re-import must not grow the champions table")

	got, err := repo.GetByName(ctx, "Aatrox")
	require.NoError(t, err)
	assert.Equal(t, "the World Ender", got.Title)
	assert.Equal(t, "Tank", *got.Role)
}

func TestChampionRepository_UpsertStats(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	champion := testutil.NewChampionBuilder().WithName("Ahri").Build(t, testDB.DB)

	stats := &domain.ChampionStats{
		ChampionID:   champion.ID,
		Health:       floatPtr(590),
		Armor:        floatPtr(21),
		AttackDamage: floatPtr(53),
		Speed:        floatPtr(330),
	}
	require.NoError(t, repo.UpsertStats(ctx, stats))

	// Second pass with new values updates the same row
	require.NoError(t, repo.UpsertStats(ctx, &domain.ChampionStats{
		ChampionID: champion.ID,
		Health:     floatPtr(610),
	}))

	var count int64
	require.NoError(t, testDB.DB.Model(&domain.ChampionStats{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var got domain.ChampionStats
	require.NoError(t, testDB.DB.First(&got, "champion_id = ?", champion.ID).Error)
	assert.Equal(t, 610.0, *got.Health)
	assert.Nil(t, got.Armor, "unset fields are stored as null")
}

func TestChampionRepository_ListWithStats(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewChampionBuilder().WithName("Garen").WithStats(690, 38, 66, 340).Build(t, testDB.DB)
	testutil.NewChampionBuilder().WithName("Zoe").Build(t, testDB.DB)

	rows, err := repo.ListWithStats(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2, "champions without stats still appear")

	byName := make(map[string]domain.ChampionWithStats, len(rows))
	for _, row := range rows {
		byName[row.Name] = row
	}

	garen := byName["Garen"]
	require.NotNil(t, garen.Health)
	assert.Equal(t, 690.0, *garen.Health)
	assert.Equal(t, 66.0, *garen.AttackDamage)

	zoe := byName["Zoe"]
	assert.Nil(t, zoe.Health)
	assert.Nil(t, zoe.Speed)
}
