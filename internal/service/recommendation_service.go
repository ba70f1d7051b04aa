package service

import (
	"context"

	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/repository"
)

type RecommendationService struct {
	recRepo repository.RecommendationRepository
}

func NewRecommendationService(recRepo repository.RecommendationRepository) *RecommendationService {
	return &RecommendationService{recRepo: recRepo}
}

func (s *RecommendationService) SaveCoreSet(ctx context.Context, set *domain.CoreItemSet) error {
	return s.recRepo.CreateCoreSet(ctx, set)
}

func (s *RecommendationService) ListCoreSets(ctx context.Context) ([]domain.ItemSetRow, error) {
	return s.recRepo.ListCoreSets(ctx)
}

func (s *RecommendationService) SaveStarterSet(ctx context.Context, set *domain.StarterItemSet) error {
	return s.recRepo.CreateStarterSet(ctx, set)
}

func (s *RecommendationService) ListStarterSets(ctx context.Context) ([]domain.ItemSetRow, error) {
	return s.recRepo.ListStarterSets(ctx)
}

func (s *RecommendationService) SaveItemRec(ctx context.Context, rec *domain.ItemRecommendation) error {
	return s.recRepo.CreateItemRec(ctx, rec)
}

func (s *RecommendationService) ListItemRecs(ctx context.Context) ([]domain.SingleItemRow, error) {
	return s.recRepo.ListItemRecs(ctx)
}

func (s *RecommendationService) SaveBootsRec(ctx context.Context, rec *domain.BootsRecommendation) error {
	return s.recRepo.CreateBootsRec(ctx, rec)
}

func (s *RecommendationService) ListBootsRecs(ctx context.Context) ([]domain.SingleItemRow, error) {
	return s.recRepo.ListBootsRecs(ctx)
}
