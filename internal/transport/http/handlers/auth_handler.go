package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vedran77/levellore/internal/service"
	"github.com/vedran77/levellore/internal/transport/http/middleware"
	"github.com/vedran77/levellore/pkg/validator"
)

type AuthHandler struct {
	accountService *service.AccountService
}

func NewAuthHandler(accountService *service.AccountService) *AuthHandler {
	return &AuthHandler{accountService: accountService}
}

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := validator.ValidateCredentials(input.Username, input.Password); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.accountService.Register(r.Context(), input.Username, input.Password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			writeError(w, http.StatusConflict, "Username already exists.")
			return
		}
		writeServerError(w, "register", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Account created successfully."})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, err := h.accountService.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		writeServerError(w, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.accountService.Logout(middleware.GetToken(r.Context()))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out."})
}
