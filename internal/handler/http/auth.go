package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/internal/service"
	"github.com/dmarrero/jobtrack/internal/utils"
	"github.com/dmarrero/jobtrack/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			h.writeValidationError(w, r, validationErr)
			return
		}

		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateSession(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			// Wrong credentials surface as the same field map as a
			// malformed request, so callers learn nothing extra.
			h.writeValidationError(w, r, validationErr)
			return
		}

		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateSession(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, foundUser, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	h.services.AuthService.Logout(ctx, sess.SessionID)

	_, _ = utils.WriteJSON(w, models.ConfirmationResponse{Message: "logged out"}, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		log.Error().Msg("no session in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	_, _ = utils.WriteJSON(w, sess, http.StatusOK)
}
