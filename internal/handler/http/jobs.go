// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Marrero

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/internal/service"
	"github.com/dmarrero/jobtrack/internal/utils"
	"github.com/dmarrero/jobtrack/models"
)

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.JobService.CreateJob(ctx, sess.UserID, req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			h.writeValidationError(w, r, validationErr)
			return
		}

		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) saveJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.SaveJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.JobService.SaveJob(ctx, sess.UserID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	jobs, err := h.services.JobService.ListJobs(ctx, sess.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if jobs == nil {
		jobs = []models.Job{}
	}

	_, _ = utils.WriteJSON(w, jobs, http.StatusOK)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	jobID, err := jobIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("unparsable job id in path")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	job, err := h.services.JobService.GetJob(ctx, sess.UserID, jobID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	jobID, err := jobIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("unparsable job id in path")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	var update models.JobUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	job, err := h.services.JobService.UpdateJob(ctx, sess.UserID, jobID, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	jobID, err := jobIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("unparsable job id in path")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	var req models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	job, err := h.services.JobService.UpdateNote(ctx, sess.UserID, jobID, req.Note)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	jobID, err := jobIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("unparsable job id in path")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	if err := h.services.JobService.DeleteJob(ctx, sess.UserID, jobID); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ConfirmationResponse{Message: "job deleted"}, http.StatusOK)
}

func (h *Handler) triageJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	jobID, err := jobIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("unparsable job id in path")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	var req models.TriageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	job, kept, err := h.services.JobService.Triage(ctx, sess.UserID, jobID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if !kept {
		_, _ = utils.WriteJSON(w, models.ConfirmationResponse{Message: "job deleted"}, http.StatusOK)
		return
	}

	_, _ = utils.WriteJSON(w, job, http.StatusOK)
}

// jobIDFromURL parses the {id} route parameter. An unparsable identifier is
// treated by callers the same as a record that does not exist.
func jobIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
