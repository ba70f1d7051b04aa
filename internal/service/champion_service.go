package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/javi102/league-companion/internal/config"
	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/repository"
	"github.com/sirupsen/logrus"
)

// ImportReport is the aggregate outcome of one import pass. Records are
// processed independently; a failure on one record does not abort the
// rest of the batch.
type ImportReport struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}

type ChampionService struct {
	championRepo repository.ChampionRepository
	infoRepo     repository.ChampionInfoRepository
	cfg          *config.Config
	log          *logrus.Logger
	httpClient   *http.Client
}

func NewChampionService(championRepo repository.ChampionRepository, infoRepo repository.ChampionInfoRepository, cfg *config.Config, log *logrus.Logger) *ChampionService {
	return &ChampionService{
		championRepo: championRepo,
		infoRepo:     infoRepo,
		cfg:          cfg,
		log:          log,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type dataDragonChampionsResponse struct {
	Type    string                        `json:"type"`
	Version string                        `json:"version"`
	Data    map[string]dataDragonChampion `json:"data"`
}

type dataDragonChampion struct {
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Stats struct {
		HP           *float64 `json:"hp"`
		Armor        *float64 `json:"armor"`
		AttackDamage *float64 `json:"attackdamage"`
		MoveSpeed    *float64 `json:"movespeed"`
	} `json:"stats"`
}

// ImportChampions mirrors the Data Dragon champion catalog into the
// champions and champion_stats tables, keyed by champion name.
func (s *ChampionService) ImportChampions(ctx context.Context) (*ImportReport, error) {
	var payload dataDragonChampionsResponse
	if err := fetchJSON(ctx, s.httpClient, s.cfg.ChampionsURL, &payload); err != nil {
		return nil, err
	}

	report := &ImportReport{}
	for key, c := range payload.Data {
		if err := s.importChampion(ctx, c); err != nil {
			s.log.WithError(err).WithField("champion", key).Warn("champion import failed")
			report.Failed++
			continue
		}
		report.Imported++
	}

	s.log.WithFields(logrus.Fields{
		"imported": report.Imported,
		"failed":   report.Failed,
	}).Info("champion import finished")
	return report, nil
}

func (s *ChampionService) importChampion(ctx context.Context, c dataDragonChampion) error {
	if c.Name == "" {
		return fmt.Errorf("record has no name")
	}

	champion := &domain.Champion{
		Name:         c.Name,
		Title:        c.Title,
		Tags:         strings.Join(c.Tags, ","),
		LastSyncedAt: time.Now(),
	}
	if len(c.Tags) > 0 {
		champion.Role = &c.Tags[0]
	}

	if err := s.championRepo.UpsertByName(ctx, champion); err != nil {
		return fmt.Errorf("upsert champion: %w", err)
	}

	stats := &domain.ChampionStats{
		ChampionID:   champion.ID,
		Health:       c.Stats.HP,
		Armor:        c.Stats.Armor,
		AttackDamage: c.Stats.AttackDamage,
		Speed:        c.Stats.MoveSpeed,
	}
	if err := s.championRepo.UpsertStats(ctx, stats); err != nil {
		return fmt.Errorf("upsert stats: %w", err)
	}
	return nil
}

func (s *ChampionService) ListChampions(ctx context.Context) ([]domain.ChampionWithStats, error) {
	return s.championRepo.ListWithStats(ctx)
}

// championInfoRecord is loosely typed on purpose: the community-sourced
// document mixes strings and numbers from row to row.
type championInfoRecord struct {
	Name       json.RawMessage `json:"Name"`
	Classes    json.RawMessage `json:"Classes"`
	Difficulty json.RawMessage `json:"Difficulty"`
	RangeType  json.RawMessage `json:"Range type"`
}

// ImportChampionInfo mirrors the secondary champion-info dataset into
// champion_infos, keyed by name. Records without a usable name cannot be
// upserted and are counted as failures.
func (s *ChampionService) ImportChampionInfo(ctx context.Context) (*ImportReport, error) {
	var payload map[string]championInfoRecord
	if err := fetchJSON(ctx, s.httpClient, s.cfg.ChampionInfoURL, &payload); err != nil {
		return nil, err
	}

	report := &ImportReport{}
	for key, rec := range payload {
		name := optionalString(rec.Name)
		if name == nil {
			s.log.WithField("record", key).Warn("champion info record has no name")
			report.Failed++
			continue
		}

		info := &domain.ChampionInfo{
			Name:       *name,
			Classes:    optionalString(rec.Classes),
			Difficulty: optionalString(rec.Difficulty),
			RangeType:  optionalString(rec.RangeType),
		}
		if err := s.infoRepo.Upsert(ctx, info); err != nil {
			s.log.WithError(err).WithField("record", key).Warn("champion info import failed")
			report.Failed++
			continue
		}
		report.Imported++
	}

	s.log.WithFields(logrus.Fields{
		"imported": report.Imported,
		"failed":   report.Failed,
	}).Info("champion info import finished")
	return report, nil
}

func (s *ChampionService) ListChampionInfo(ctx context.Context) ([]domain.ChampionInfo, error) {
	return s.infoRepo.List(ctx)
}
