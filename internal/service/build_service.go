package service

import (
	"context"

	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/repository"
)

type BuildService struct {
	buildRepo repository.BuildRepository
}

func NewBuildService(buildRepo repository.BuildRepository) *BuildService {
	return &BuildService{buildRepo: buildRepo}
}

// SaveBuild stores one row per item of the build. Repeated saves of the
// same build accumulate rows; that matches the table contract.
func (s *BuildService) SaveBuild(ctx context.Context, userID, championID uint, itemIDs []uint) error {
	entries := make([]*domain.BuildEntry, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		entries = append(entries, &domain.BuildEntry{
			UserID:     userID,
			ChampionID: championID,
			ItemID:     itemID,
		})
	}
	return s.buildRepo.CreateEntries(ctx, entries)
}

func (s *BuildService) GetBuilds(ctx context.Context, filter domain.BuildFilter) ([]domain.BuildRow, error) {
	return s.buildRepo.List(ctx, filter)
}
