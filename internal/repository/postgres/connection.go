package postgres

import (
	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Champion{},
		&domain.ChampionStats{},
		&domain.ChampionInfo{},
		&domain.Item{},
		&domain.BuildEntry{},
		&domain.CounterMatchup{},
		&domain.Matchup{},
		&domain.GoodMatchup{},
		&domain.CoreItemSet{},
		&domain.StarterItemSet{},
		&domain.ItemRecommendation{},
		&domain.BootsRecommendation{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:           NewUserRepository(db),
		Champion:       NewChampionRepository(db),
		ChampionInfo:   NewChampionInfoRepository(db),
		Item:           NewItemRepository(db),
		Build:          NewBuildRepository(db),
		Matchup:        NewMatchupRepository(db),
		Recommendation: NewRecommendationRepository(db),
	}
}
