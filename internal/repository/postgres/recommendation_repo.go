package postgres

import (
	"context"

	"github.com/javi102/league-companion/internal/domain"
	"gorm.io/gorm"
)

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *recommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) CreateCoreSet(ctx context.Context, set *domain.CoreItemSet) error {
	return r.db.WithContext(ctx).Create(set).Error
}

func (r *recommendationRepository) ListCoreSets(ctx context.Context) ([]domain.ItemSetRow, error) {
	return r.listItemSets(ctx, "core_item_sets")
}

func (r *recommendationRepository) CreateStarterSet(ctx context.Context, set *domain.StarterItemSet) error {
	return r.db.WithContext(ctx).Create(set).Error
}

func (r *recommendationRepository) ListStarterSets(ctx context.Context) ([]domain.ItemSetRow, error) {
	return r.listItemSets(ctx, "starter_item_sets")
}

// listItemSets resolves the champion and the up-to-three item references
// of a set table into names. Item joins are LEFT JOINs: unset slots come
// back null instead of dropping the row.
func (r *recommendationRepository) listItemSets(ctx context.Context, table string) ([]domain.ItemSetRow, error) {
	var rows []domain.ItemSetRow
	err := r.db.WithContext(ctx).
		Table(table+" AS s").
		Select("s.id, c.name AS champion_name, i1.name AS item1_name, i2.name AS item2_name, "+
			"i3.name AS item3_name, s.pick_rate, s.games, s.win_rate").
		Joins("INNER JOIN champions c ON s.champion_id = c.id").
		Joins("LEFT JOIN items i1 ON s.item1 = i1.id").
		Joins("LEFT JOIN items i2 ON s.item2 = i2.id").
		Joins("LEFT JOIN items i3 ON s.item3 = i3.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recommendationRepository) CreateItemRec(ctx context.Context, rec *domain.ItemRecommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recommendationRepository) ListItemRecs(ctx context.Context) ([]domain.SingleItemRow, error) {
	return r.listSingleItemRecs(ctx, "item_recommendations")
}

func (r *recommendationRepository) CreateBootsRec(ctx context.Context, rec *domain.BootsRecommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recommendationRepository) ListBootsRecs(ctx context.Context) ([]domain.SingleItemRow, error) {
	return r.listSingleItemRecs(ctx, "boots_recommendations")
}

func (r *recommendationRepository) listSingleItemRecs(ctx context.Context, table string) ([]domain.SingleItemRow, error) {
	var rows []domain.SingleItemRow
	err := r.db.WithContext(ctx).
		Table(table+" AS rec").
		Select("rec.id, c.name AS champion_name, i.name AS item_name, rec.pick_rate, rec.games, rec.win_rate").
		Joins("INNER JOIN champions c ON rec.champion_id = c.id").
		Joins("INNER JOIN items i ON rec.item_id = i.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
