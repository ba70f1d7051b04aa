package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/javi102/league-companion/internal/domain"
	"github.com/javi102/league-companion/internal/service"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authService *service.AuthService
	log         *logrus.Logger
}

func NewAuthHandler(authService *service.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	_, err := h.authService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			respondMessage(w, http.StatusBadRequest, "El usuario ya existe")
			return
		}
		h.log.WithError(err).Error("register failed")
		respondError(w, http.StatusInternalServerError, "Error en el registro de usuario")
		return
	}

	respondMessage(w, http.StatusCreated, "Usuario registrado exitosamente")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	user, err := h.authService.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondMessage(w, http.StatusBadRequest, "Usuario o contraseña incorrectos")
			return
		}
		h.log.WithError(err).Error("login failed")
		respondError(w, http.StatusInternalServerError, "Error en el inicio de sesión")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Inicio de sesión exitoso",
		"user":    user,
	})
}
