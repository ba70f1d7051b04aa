package service

import (
	"github.com/javi102/league-companion/internal/config"
	"github.com/javi102/league-companion/internal/repository"
	"github.com/sirupsen/logrus"
)

type Services struct {
	Auth           *AuthService
	Champion       *ChampionService
	Item           *ItemService
	Build          *BuildService
	Matchup        *MatchupService
	Recommendation *RecommendationService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, log *logrus.Logger) *Services {
	return &Services{
		Auth:           NewAuthService(repos.User),
		Champion:       NewChampionService(repos.Champion, repos.ChampionInfo, cfg, log),
		Item:           NewItemService(repos.Item, cfg, log),
		Build:          NewBuildService(repos.Build),
		Matchup:        NewMatchupService(repos.Matchup),
		Recommendation: NewRecommendationService(repos.Recommendation),
	}
}
