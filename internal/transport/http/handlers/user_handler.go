package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vedran77/levellore/internal/service"
	"github.com/vedran77/levellore/internal/transport/http/middleware"
	"github.com/vedran77/levellore/pkg/validator"
)

type UserHandler struct {
	accountService *service.AccountService
}

func NewUserHandler(accountService *service.AccountService) *UserHandler {
	return &UserHandler{accountService: accountService}
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	profile, err := h.accountService.GetProfile(r.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUnknownUser) {
			// Session outlived the account record.
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		writeServerError(w, "get profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

type avatarInput struct {
	Image string `json:"image"`
}

func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var input avatarInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := validator.ValidateAvatar(input.Image); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	username := middleware.GetUsername(r.Context())
	pic, err := h.accountService.UpdateAvatar(r.Context(), username, input.Image)
	if err != nil {
		if errors.Is(err, service.ErrUnknownUser) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		writeServerError(w, "update avatar", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"profilePic": pic})
}
