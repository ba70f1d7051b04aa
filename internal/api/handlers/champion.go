package handlers

import (
	"net/http"

	"github.com/javi102/league-companion/internal/service"
	"github.com/sirupsen/logrus"
)

type ChampionHandler struct {
	championService *service.ChampionService
	log             *logrus.Logger
}

func NewChampionHandler(championService *service.ChampionService, log *logrus.Logger) *ChampionHandler {
	return &ChampionHandler{championService: championService, log: log}
}

type importResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
	Failed   int    `json:"failed"`
}

func (h *ChampionHandler) Import(w http.ResponseWriter, r *http.Request) {
	report, err := h.championService.ImportChampions(r.Context())
	if err != nil {
		h.log.WithError(err).Error("champion import failed")
		respondError(w, http.StatusInternalServerError, "Error al importar los campeones")
		return
	}

	respondJSON(w, http.StatusOK, importResponse{
		Message:  "Campeones importados correctamente",
		Imported: report.Imported,
		Failed:   report.Failed,
	})
}

func (h *ChampionHandler) List(w http.ResponseWriter, r *http.Request) {
	champions, err := h.championService.ListChampions(r.Context())
	if err != nil {
		h.log.WithError(err).Error("champion listing failed")
		respondError(w, http.StatusInternalServerError, "Error al obtener los campeones")
		return
	}
	respondData(w, champions)
}

func (h *ChampionHandler) ImportInfo(w http.ResponseWriter, r *http.Request) {
	report, err := h.championService.ImportChampionInfo(r.Context())
	if err != nil {
		h.log.WithError(err).Error("champion info import failed")
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Error al importar las estadísticas",
			"details": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, importResponse{
		Message:  "Estadísticas importadas correctamente",
		Imported: report.Imported,
		Failed:   report.Failed,
	})
}

func (h *ChampionHandler) ListInfo(w http.ResponseWriter, r *http.Request) {
	infos, err := h.championService.ListChampionInfo(r.Context())
	if err != nil {
		h.log.WithError(err).Error("champion info listing failed")
		respondError(w, http.StatusInternalServerError, "Error al obtener las estadísticas")
		return
	}
	respondData(w, infos)
}
