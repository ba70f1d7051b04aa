package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/service"
	"github.com/sirupsen/logrus"
)

type BuildHandler struct {
	buildService *service.BuildService
	log          *logrus.Logger
}

func NewBuildHandler(buildService *service.BuildService, log *logrus.Logger) *BuildHandler {
	return &BuildHandler{buildService: buildService, log: log}
}

type SaveBuildRequest struct {
	Items      []uint `json:"items"`
	ChampionID uint   `json:"championId"`
	UserID     uint   `json:"userId"`
}

func (h *BuildHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveBuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.buildService.SaveBuild(r.Context(), req.UserID, req.ChampionID, req.Items); err != nil {
		h.log.WithError(err).Error("save build failed")
		respondError(w, http.StatusInternalServerError, "Error al guardar la build")
		return
	}

	respondMessage(w, http.StatusCreated, "Build guardada correctamente")
}

func (h *BuildHandler) Get(w http.ResponseWriter, r *http.Request) {
	filter := domain.BuildFilter{
		UserID:     queryUint(r, "userId"),
		ChampionID: queryUint(r, "championId"),
	}

	builds, err := h.buildService.GetBuilds(r.Context(), filter)
	if err != nil {
		h.log.WithError(err).Error("build listing failed")
		respondError(w, http.StatusInternalServerError, "Error al obtener las builds personalizadas")
		return
	}
	respondData(w, builds)
}

// queryUint reads an optional numeric query parameter; absent or
// unparseable values impose no filter.
func queryUint(r *http.Request, name string) *uint {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(v)
	return &id
}
