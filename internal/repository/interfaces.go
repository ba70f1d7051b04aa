package repository

import (
	"context"

	"github.com/javi102/league-companion/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ChampionRepository interface {
	// UpsertByName inserts the champion or, when a row with the same name
	// exists, updates its mutable fields. The surrogate id is populated on
	// the model either way.
	UpsertByName(ctx context.Context, champion *domain.Champion) error
	UpsertStats(ctx context.Context, stats *domain.ChampionStats) error
	GetByName(ctx context.Context, name string) (*domain.Champion, error)
	ListWithStats(ctx context.Context) ([]domain.ChampionWithStats, error)
}

type ChampionInfoRepository interface {
	Upsert(ctx context.Context, info *domain.ChampionInfo) error
	List(ctx context.Context) ([]domain.ChampionInfo, error)
}

type ItemRepository interface {
	UpsertByName(ctx context.Context, item *domain.Item) error
	List(ctx context.Context) ([]domain.Item, error)
}

type BuildRepository interface {
	CreateEntries(ctx context.Context, entries []*domain.BuildEntry) error
	List(ctx context.Context, filter domain.BuildFilter) ([]domain.BuildRow, error)
}

type MatchupRepository interface {
	CreateCounter(ctx context.Context, m *domain.CounterMatchup) error
	ListCounter(ctx context.Context) ([]domain.CounterMatchup, error)
	CreateEven(ctx context.Context, m *domain.Matchup) error
	ListEven(ctx context.Context) ([]domain.Matchup, error)
	CreateGood(ctx context.Context, m *domain.GoodMatchup) error
	ListGood(ctx context.Context) ([]domain.GoodMatchup, error)
}

type RecommendationRepository interface {
	CreateCoreSet(ctx context.Context, set *domain.CoreItemSet) error
	ListCoreSets(ctx context.Context) ([]domain.ItemSetRow, error)
	CreateStarterSet(ctx context.Context, set *domain.StarterItemSet) error
	ListStarterSets(ctx context.Context) ([]domain.ItemSetRow, error)
	CreateItemRec(ctx context.Context, rec *domain.ItemRecommendation) error
	ListItemRecs(ctx context.Context) ([]domain.SingleItemRow, error)
	CreateBootsRec(ctx context.Context, rec *domain.BootsRecommendation) error
	ListBootsRecs(ctx context.Context) ([]domain.SingleItemRow, error)
}

type Repositories struct {
	User           UserRepository
	Champion       ChampionRepository
	ChampionInfo   ChampionInfoRepository
	Item           ItemRepository
	Build          BuildRepository
	Matchup        MatchupRepository
	Recommendation RecommendationRepository
}
