// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Marrero

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/internal/store"
	"github.com/dmarrero/jobtrack/internal/validators"
	"github.com/dmarrero/jobtrack/models"
)

// jobService is the concrete implementation of JobService.
//
// Records are scoped to the account that created them: every operation on an
// existing record loads it first and compares its owner with the calling
// account before acting. An existing record owned by someone else yields
// ErrNotOwner, never the record itself.
type jobService struct {
	jobRepository store.JobRepository

	// validator checks create payloads and produces the per-field messages
	// surfaced to the user.
	validator *validators.JobValidator

	logger *logger.Logger
}

// NewJobService constructs a JobService backed by the given repository.
func NewJobService(jobRepository store.JobRepository, logger *logger.Logger) JobService {
	return &jobService{
		jobRepository: jobRepository,
		validator:     validators.NewJobValidator(),
		logger:        logger,
	}
}

// CreateJob persists a new record for the calling account.
//
// Title, Company, URL and Location are required and validated independently
// of one another. Status defaults to StatusApplied when absent; a present
// status must be one of the known labels. The note starts with its
// placeholder text.
//
// Returns the persisted record or:
//   - *ValidationError carrying per-field messages if a required field is
//     blank.
//   - ErrInvalidJobStatus if the supplied status is not a known label.
//   - A wrapped storage error if persistence fails.
func (j *jobService) CreateJob(ctx context.Context, userID int64, req models.CreateJobRequest) (models.Job, error) {
	log := logger.FromContext(ctx)

	if fields := j.validator.ValidateCreation(req); len(fields) > 0 {
		log.Info().Int64("user_id", userID).Any("fields", fields).Msg("job payload rejected")
		return models.Job{}, NewValidationError(fields)
	}

	status := req.Status
	if status == "" {
		status = models.StatusApplied
	}
	if !status.Valid() {
		log.Error().Int64("user_id", userID).Str("status", string(status)).Msg("unknown job status")
		return models.Job{}, fmt.Errorf("%w: %q", ErrInvalidJobStatus, status)
	}

	created, err := j.jobRepository.CreateJob(ctx, models.Job{
		UserID:        userID,
		Status:        status,
		Title:         req.Title,
		Company:       req.Company,
		URL:           req.URL,
		Location:      req.Location,
		Note:          models.DefaultNote,
		DateSubmitted: time.Now(),
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("job creation ended with error")
		return models.Job{}, fmt.Errorf("job creation ended with error: %w", err)
	}

	return created, nil
}

// SaveJob persists a record straight from search results.
//
// Unlike CreateJob nothing is required: absent or blank fields are replaced
// with the NoneProvided sentinel so a posting can be kept even when the
// upstream result was incomplete. The record starts in StatusViewed with the
// placeholder note, waiting for triage.
func (j *jobService) SaveJob(ctx context.Context, userID int64, req models.SaveJobRequest) (models.Job, error) {
	log := logger.FromContext(ctx)

	saved, err := j.jobRepository.CreateJob(ctx, models.Job{
		UserID:        userID,
		Status:        models.StatusViewed,
		Title:         orNoneProvided(req.Title),
		Company:       orNoneProvided(req.Company),
		URL:           orNoneProvided(req.URL),
		Location:      orNoneProvided(req.Location),
		Note:          models.DefaultNote,
		DateSubmitted: time.Now(),
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("saving job from search results ended with error")
		return models.Job{}, fmt.Errorf("saving job from search results ended with error: %w", err)
	}

	return saved, nil
}

// ListJobs returns every record owned by the calling account, oldest first.
func (j *jobService) ListJobs(ctx context.Context, userID int64) ([]models.Job, error) {
	log := logger.FromContext(ctx)

	jobs, err := j.jobRepository.ListJobsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing jobs ended with error")
		return nil, fmt.Errorf("listing jobs ended with error: %w", err)
	}

	return jobs, nil
}

// GetJob returns a single record owned by the calling account.
//
// Returns store.ErrJobNotFound when no record with the given identifier
// exists and ErrNotOwner when it belongs to another account.
func (j *jobService) GetJob(ctx context.Context, userID, jobID int64) (models.Job, error) {
	return j.getOwnedJob(ctx, userID, jobID)
}

// UpdateJob applies the non-nil fields of update to a record owned by the
// calling account and returns the refreshed record.
//
// Returns ErrInvalidDataProvided when the update carries no fields,
// ErrInvalidJobStatus when it carries an unknown status label, plus the
// ownership errors of GetJob.
func (j *jobService) UpdateJob(ctx context.Context, userID, jobID int64, update models.JobUpdate) (models.Job, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		log.Error().Int64("user_id", userID).Int64("job_id", jobID).Msg("empty job update provided")
		return models.Job{}, ErrInvalidDataProvided
	}

	if update.Status != nil && !update.Status.Valid() {
		log.Error().Int64("user_id", userID).Str("status", string(*update.Status)).Msg("unknown job status")
		return models.Job{}, fmt.Errorf("%w: %q", ErrInvalidJobStatus, *update.Status)
	}

	if _, err := j.getOwnedJob(ctx, userID, jobID); err != nil {
		return models.Job{}, err
	}

	if err := j.jobRepository.UpdateJob(ctx, jobID, update); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("job_id", jobID).Msg("job update ended with error")
		return models.Job{}, fmt.Errorf("job update ended with error: %w", err)
	}

	return j.jobRepository.GetJobByID(ctx, jobID)
}

// UpdateNote replaces the note text of a record owned by the calling account
// and returns the refreshed record.
func (j *jobService) UpdateNote(ctx context.Context, userID, jobID int64, note string) (models.Job, error) {
	log := logger.FromContext(ctx)

	if _, err := j.getOwnedJob(ctx, userID, jobID); err != nil {
		return models.Job{}, err
	}

	if err := j.jobRepository.UpdateNote(ctx, jobID, note); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("job_id", jobID).Msg("note update ended with error")
		return models.Job{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return j.jobRepository.GetJobByID(ctx, jobID)
}

// DeleteJob permanently removes a record owned by the calling account.
// A repeated delete surfaces store.ErrJobNotFound.
func (j *jobService) DeleteJob(ctx context.Context, userID, jobID int64) error {
	log := logger.FromContext(ctx)

	if _, err := j.getOwnedJob(ctx, userID, jobID); err != nil {
		return err
	}

	if err := j.jobRepository.DeleteJob(ctx, jobID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("job_id", jobID).Msg("job deletion ended with error")
		return fmt.Errorf("job deletion ended with error: %w", err)
	}

	return nil
}

// Triage resolves the "did you apply?" question for a saved record.
//
// Answering "yes" promotes the record to StatusApplied, leaving every other
// field untouched; answering "no" deletes it. The boolean result reports
// whether the record still exists: true with the refreshed record after
// "yes", false with a zero record after "no".
//
// Returns ErrInvalidTriageAnswer for any other answer, plus the ownership
// errors of GetJob.
func (j *jobService) Triage(ctx context.Context, userID, jobID int64, req models.TriageRequest) (models.Job, bool, error) {
	log := logger.FromContext(ctx)

	answer := strings.ToLower(strings.TrimSpace(req.Applied))
	if answer != "yes" && answer != "no" {
		log.Error().Int64("user_id", userID).Str("answer", req.Applied).Msg("invalid triage answer")
		return models.Job{}, false, ErrInvalidTriageAnswer
	}

	if _, err := j.getOwnedJob(ctx, userID, jobID); err != nil {
		return models.Job{}, false, err
	}

	if answer == "no" {
		if err := j.jobRepository.DeleteJob(ctx, jobID); err != nil {
			log.Err(err).Int64("user_id", userID).Int64("job_id", jobID).Msg("triage deletion ended with error")
			return models.Job{}, false, fmt.Errorf("triage deletion ended with error: %w", err)
		}
		return models.Job{}, false, nil
	}

	applied := models.StatusApplied
	if err := j.jobRepository.UpdateJob(ctx, jobID, models.JobUpdate{Status: &applied}); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("job_id", jobID).Msg("triage promotion ended with error")
		return models.Job{}, false, fmt.Errorf("triage promotion ended with error: %w", err)
	}

	job, err := j.jobRepository.GetJobByID(ctx, jobID)
	if err != nil {
		return models.Job{}, false, err
	}

	return job, true, nil
}

// getOwnedJob loads a record and verifies it belongs to the calling account.
func (j *jobService) getOwnedJob(ctx context.Context, userID, jobID int64) (models.Job, error) {
	log := logger.FromContext(ctx)

	job, err := j.jobRepository.GetJobByID(ctx, jobID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("job_id", jobID).Msg("job lookup ended with error")
		return models.Job{}, fmt.Errorf("job lookup ended with error: %w", err)
	}

	if job.UserID != userID {
		log.Warn().
			Int64("user_id", userID).
			Int64("owner_id", job.UserID).
			Int64("job_id", jobID).
			Msg("job belongs to another account")
		return models.Job{}, ErrNotOwner
	}

	return job, nil
}

// orNoneProvided substitutes the NoneProvided sentinel for blank values.
func orNoneProvided(value string) string {
	if strings.TrimSpace(value) == "" {
		return models.NoneProvided
	}

	return value
}
