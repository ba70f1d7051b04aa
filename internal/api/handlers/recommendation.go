package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/service"
	"github.com/sirupsen/logrus"
)

type RecommendationHandler struct {
	recService *service.RecommendationService
	log        *logrus.Logger
}

func NewRecommendationHandler(recService *service.RecommendationService, log *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{recService: recService, log: log}
}

func (h *RecommendationHandler) SaveCoreItems(w http.ResponseWriter, r *http.Request) {
	var set domain.CoreItemSet
	if err := json.NewDecoder(r.Body).Decode(&set.ItemSet); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.recService.SaveCoreSet(r.Context(), &set); err != nil {
		h.log.WithError(err).Error("save core items failed")
		respondError(w, http.StatusInternalServerError, "Error al guardar CoreItems")
		return
	}
	respondMessage(w, http.StatusCreated, "CoreItems guardados correctamente")
}

func (h *RecommendationHandler) ListCoreItems(w http.ResponseWriter, r *http.Request) {
	sets, err := h.recService.ListCoreSets(r.Context())
	if err != nil {
		h.log.WithError(err).Error("core items listing failed")
		respondError(w, http.StatusInternalServerError, "Error al obtener los CoreItems")
		return
	}
	respondData(w, sets)
}

func (h *RecommendationHandler) SaveStarterItems(w http.ResponseWriter, r *http.Request) {
	var set domain.StarterItemSet
	if err := json.NewDecoder(r.Body).Decode(&set.ItemSet); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.recService.SaveStarterSet(r.Context(), &set); err != nil {
		h.log.WithError(err).Error("save starter items failed")
		respondError(w, http.StatusInternalServerError, "Error al guardar StarterItems")
		return
	}
	respondMessage(w, http.StatusCreated, "StarterItems guardados correctamente")
}

func (h *RecommendationHandler) ListStarterItems(w http.ResponseWriter, r *http.Request) {
	sets, err := h.recService.ListStarterSets(r.Context())
	if err != nil {
		h.log.WithError(err).Error("starter items listing failed")
		respondError(w, http.StatusInternalServerError, "Error al obtener los StarterItems")
		return
	}
	respondData(w, sets)
}

func (h *RecommendationHandler) SaveItemRec(w http.ResponseWriter, r *http.Request) {
	var rec domain.ItemRecommendation
	if err := json.NewDecoder(r.Body).Decode(&rec.SingleItemRec); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.recService.SaveItemRec(r.Context(), &rec); err != nil {
		h.log.WithError(err).Error("save item recommendation failed")
		respondError(w, http.StatusInternalServerError, "Error al guardar el objeto")
		return
	}
	respondMessage(w, http.StatusCreated, "Objeto guardado correctamente")
}

func (h *RecommendationHandler) ListItemRecs(w http.ResponseWriter, r *http.Request) {
	recs, err := h.recService.ListItemRecs(r.Context())
	if err != nil {
		h.log.WithError(err).Error("item recommendation listing failed")
		respondError(w, http.StatusInternalServerError, "Error al obtener los objetos")
		return
	}
	respondData(w, recs)
}

func (h *RecommendationHandler) SaveBoots(w http.ResponseWriter, r *http.Request) {
	var rec domain.BootsRecommendation
	if err := json.NewDecoder(r.Body).Decode(&rec.SingleItemRec); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.recService.SaveBootsRec(r.Context(), &rec); err != nil {
		h.log.WithError(err).Error("save boots recommendation failed")
		respondError(w, http.StatusInternalServerError, "Error al guardar el objeto")
		return
	}
	respondMessage(w, http.StatusCreated, "Objeto guardado correctamente en boots")
}

func (h *RecommendationHandler) ListBoots(w http.ResponseWriter, r *http.Request) {
	recs, err := h.recService.ListBootsRecs(r.Context())
	if err != nil {
		h.log.WithError(err).Error("boots recommendation listing failed")
		respondError(w, http.StatusInternalServerError, "Error al obtener los objetos")
		return
	}
	respondData(w, recs)
}
