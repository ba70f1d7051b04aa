package service

import (
	"context"
	"net/http"
	"time"

	"github.com/javi102/league-companion/internal/config"
	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/repository"
	"github.com/sirupsen/logrus"
)

type ItemService struct {
	itemRepo   repository.ItemRepository
	cfg        *config.Config
	log        *logrus.Logger
	httpClient *http.Client
}

func NewItemService(itemRepo repository.ItemRepository, cfg *config.Config, log *logrus.Logger) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		cfg:      cfg,
		log:      log,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type itemRecord struct {
	Name  string  `json:"name"`
	Total *int    `json:"total"`
	Image *string `json:"image"`
}

// ImportItems mirrors the items catalog into the items table, keyed by
// item name. A missing price defaults to 0, a missing image to NULL.
func (s *ItemService) ImportItems(ctx context.Context) (*ImportReport, error) {
	var payload []itemRecord
	if err := fetchJSON(ctx, s.httpClient, s.cfg.ItemsURL, &payload); err != nil {
		return nil, err
	}

	report := &ImportReport{}
	for _, rec := range payload {
		if rec.Name == "" {
			s.log.Warn("item record has no name")
			report.Failed++
			continue
		}

		item := &domain.Item{
			Name:     rec.Name,
			ImageURL: rec.Image,
		}
		if rec.Total != nil {
			item.Price = *rec.Total
		}

		if err := s.itemRepo.UpsertByName(ctx, item); err != nil {
			s.log.WithError(err).WithField("item", rec.Name).Warn("item import failed")
			report.Failed++
			continue
		}
		report.Imported++
	}

	s.log.WithFields(logrus.Fields{
		"imported": report.Imported,
		"failed":   report.Failed,
	}).Info("item import finished")
	return report, nil
}

func (s *ItemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.itemRepo.List(ctx)
}
