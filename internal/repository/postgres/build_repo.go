package postgres

import (
	"context"

	"github.com/javi102/league-companion/internal/domain"
	"gorm.io/gorm"
)

type buildRepository struct {
	db *gorm.DB
}

func NewBuildRepository(db *gorm.DB) *buildRepository {
	return &buildRepository{db: db}
}

func (r *buildRepository) CreateEntries(ctx context.Context, entries []*domain.BuildEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(entries).Error
}

func (r *buildRepository) List(ctx context.Context, filter domain.BuildFilter) ([]domain.BuildRow, error) {
	q := r.db.WithContext(ctx).
		Table("build_entries AS b").
		Select(`b.id AS build_id, u.username AS "user", c.name AS champion, c.title AS champion_title, ` +
			"i.name AS item_name, i.price AS item_price, i.image_url AS item_image").
		Joins("INNER JOIN users u ON b.user_id = u.id").
		Joins("INNER JOIN champions c ON b.champion_id = c.id").
		Joins("INNER JOIN items i ON b.item_id = i.id")

	if filter.UserID != nil {
		q = q.Where("b.user_id = ?", *filter.UserID)
	}
	if filter.ChampionID != nil {
		q = q.Where("b.champion_id = ?", *filter.ChampionID)
	}

	var rows []domain.BuildRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
