package service

import (
	"context"

	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/repository"
)

type MatchupService struct {
	matchupRepo repository.MatchupRepository
}

func NewMatchupService(matchupRepo repository.MatchupRepository) *MatchupService {
	return &MatchupService{matchupRepo: matchupRepo}
}

func (s *MatchupService) SaveCounter(ctx context.Context, m *domain.CounterMatchup) error {
	return s.matchupRepo.CreateCounter(ctx, m)
}

func (s *MatchupService) ListCounter(ctx context.Context) ([]domain.CounterMatchup, error) {
	return s.matchupRepo.ListCounter(ctx)
}

func (s *MatchupService) SaveEven(ctx context.Context, m *domain.Matchup) error {
	return s.matchupRepo.CreateEven(ctx, m)
}

func (s *MatchupService) ListEven(ctx context.Context) ([]domain.Matchup, error) {
	return s.matchupRepo.ListEven(ctx)
}

func (s *MatchupService) SaveGood(ctx context.Context, m *domain.GoodMatchup) error {
	return s.matchupRepo.CreateGood(ctx, m)
}

func (s *MatchupService) ListGood(ctx context.Context) ([]domain.GoodMatchup, error) {
	return s.matchupRepo.ListGood(ctx)
}
