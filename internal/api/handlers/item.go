package handlers

import (
	"net/http"

	"github.com/javi102/league-companion/internal/service"
	"github.com/sirupsen/logrus"
)

type ItemHandler struct {
	itemService *service.ItemService
	log         *logrus.Logger
}

func NewItemHandler(itemService *service.ItemService, log *logrus.Logger) *ItemHandler {
	return &ItemHandler{itemService: itemService, log: log}
}

func (h *ItemHandler) Import(w http.ResponseWriter, r *http.Request) {
	report, err := h.itemService.ImportItems(r.Context())
	if err != nil {
		h.log.WithError(err).Error("item import failed")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, importResponse{
		Message:  "Ítems importados correctamente",
		Imported: report.Imported,
		Failed:   report.Failed,
	})
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.ListItems(r.Context())
	if err != nil {
		h.log.WithError(err).Error("item listing failed")
		respondError(w, http.StatusInternalServerError, "Error al obtener los ítems")
		return
	}
	respondData(w, items)
}
