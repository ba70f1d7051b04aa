package postgres

import (
	"context"

	"github.com/javi102/league-companion/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type championInfoRepository struct {
	db *gorm.DB
}

func NewChampionInfoRepository(db *gorm.DB) *championInfoRepository {
	return &championInfoRepository{db: db}
}

func (r *championInfoRepository) Upsert(ctx context.Context, info *domain.ChampionInfo) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"classes", "difficulty", "range_type"}),
	}).Create(info).Error
}

func (r *championInfoRepository) List(ctx context.Context) ([]domain.ChampionInfo, error) {
	var infos []domain.ChampionInfo
	if err := r.db.WithContext(ctx).Find(&infos).Error; err != nil {
		return nil, err
	}
	return infos, nil
}
