package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/service"
	"github.com/sirupsen/logrus"
)

type MatchupHandler struct {
	matchupService *service.MatchupService
	log            *logrus.Logger
}

func NewMatchupHandler(matchupService *service.MatchupService, log *logrus.Logger) *MatchupHandler {
	return &MatchupHandler{matchupService: matchupService, log: log}
}

func (h *MatchupHandler) SaveCounter(w http.ResponseWriter, r *http.Request) {
	var m domain.CounterMatchup
	if err := json.NewDecoder(r.Body).Decode(&m.MatchupRecord); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.matchupService.SaveCounter(r.Context(), &m); err != nil {
		h.log.WithError(err).Error("save counter matchup failed")
		respondError(w, http.StatusInternalServerError, "Error al guardar los datos de counter-matchup")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Datos de counter-matchup guardados correctamente",
		"data":    m,
	})
}

func (h *MatchupHandler) ListCounter(w http.ResponseWriter, r *http.Request) {
	matchups, err := h.matchupService.ListCounter(r.Context())
	if err != nil {
		h.log.WithError(err).Error("counter matchup listing failed")
		respondError(w, http.StatusInternalServerError, "Error al obtener los datos de counter-matchup")
		return
	}
	respondData(w, matchups)
}

func (h *MatchupHandler) SaveEven(w http.ResponseWriter, r *http.Request) {
	var m domain.Matchup
	if err := json.NewDecoder(r.Body).Decode(&m.MatchupRecord); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.matchupService.SaveEven(r.Context(), &m); err != nil {
		h.log.WithError(err).Error("save matchup failed")
		respondError(w, http.StatusInternalServerError, "Error al guardar los datos de matchup")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Datos de matchup guardados correctamente",
		"data":    m,
	})
}

func (h *MatchupHandler) ListEven(w http.ResponseWriter, r *http.Request) {
	matchups, err := h.matchupService.ListEven(r.Context())
	if err != nil {
		h.log.WithError(err).Error("matchup listing failed")
		respondError(w, http.StatusInternalServerError, "Error al obtener los datos de matchup")
		return
	}
	respondData(w, matchups)
}

func (h *MatchupHandler) SaveGood(w http.ResponseWriter, r *http.Request) {
	var m domain.GoodMatchup
	if err := json.NewDecoder(r.Body).Decode(&m.MatchupRecord); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.matchupService.SaveGood(r.Context(), &m); err != nil {
		h.log.WithError(err).Error("save good matchup failed")
		respondError(w, http.StatusInternalServerError, "Error al guardar los datos de good-matchup")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Datos de good-matchup guardados correctamente",
		"data":    m,
	})
}

func (h *MatchupHandler) ListGood(w http.ResponseWriter, r *http.Request) {
	matchups, err := h.matchupService.ListGood(r.Context())
	if err != nil {
		h.log.WithError(err).Error("good matchup listing failed")
		respondError(w, http.StatusInternalServerError, "Error al obtener los datos de good-matchup")
		return
	}
	respondData(w, matchups)
}
