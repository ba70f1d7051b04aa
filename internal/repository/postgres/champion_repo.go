package postgres

import (
	"context"

	"github.com/javi102/league-companion/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type championRepository struct {
	db *gorm.DB
}

func NewChampionRepository(db *gorm.DB) *championRepository {
	return &championRepository{db: db}
}

// UpsertByName is a single INSERT ... ON CONFLICT (name) DO UPDATE with
// RETURNING id, so concurrent imports of the same catalog cannot create
// duplicate rows for one champion name.
func (r *championRepository) UpsertByName(ctx context.Context, champion *domain.Champion) error {
	return r.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "role", "tags", "last_synced_at"}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "id"}}},
	).Create(champion).Error
}

func (r *championRepository) UpsertStats(ctx context.Context, stats *domain.ChampionStats) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "champion_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"health", "armor", "attack_damage", "speed"}),
	}).Create(stats).Error
}

func (r *championRepository) GetByName(ctx context.Context, name string) (*domain.Champion, error) {
	var champion domain.Champion
	err := r.db.WithContext(ctx).First(&champion, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &champion, nil
}

func (r *championRepository) ListWithStats(ctx context.Context) ([]domain.ChampionWithStats, error) {
	var rows []domain.ChampionWithStats
	err := r.db.WithContext(ctx).
		Table("champions").
		Select("champions.id, champions.name, champions.title, champions.role, " +
			"champion_stats.health, champion_stats.armor, champion_stats.attack_damage, champion_stats.speed").
		Joins("LEFT JOIN champion_stats ON champion_stats.champion_id = champions.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
