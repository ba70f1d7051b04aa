package postgres

import (
	"context"

	"github.com/javi102/league-companion/internal/domain"
	"gorm.io/gorm"
)

// matchupRepository serves the three structurally identical matchup
// tables; GORM routes each call to its table through the model type.
type matchupRepository struct {
	db *gorm.DB
}

func NewMatchupRepository(db *gorm.DB) *matchupRepository {
	return &matchupRepository{db: db}
}

func (r *matchupRepository) CreateCounter(ctx context.Context, m *domain.CounterMatchup) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *matchupRepository) ListCounter(ctx context.Context) ([]domain.CounterMatchup, error) {
	var matchups []domain.CounterMatchup
	if err := r.db.WithContext(ctx).Find(&matchups).Error; err != nil {
		return nil, err
	}
	return matchups, nil
}

func (r *matchupRepository) CreateEven(ctx context.Context, m *domain.Matchup) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *matchupRepository) ListEven(ctx context.Context) ([]domain.Matchup, error) {
	var matchups []domain.Matchup
	if err := r.db.WithContext(ctx).Find(&matchups).Error; err != nil {
		return nil, err
	}
	return matchups, nil
}

func (r *matchupRepository) CreateGood(ctx context.Context, m *domain.GoodMatchup) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *matchupRepository) ListGood(ctx context.Context) ([]domain.GoodMatchup, error) {
	var matchups []domain.GoodMatchup
	if err := r.db.WithContext(ctx).Find(&matchups).Error; err != nil {
		return nil, err
	}
	return matchups, nil
}
