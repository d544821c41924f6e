// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Marrero

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/internal/mock"
	"github.com/dmarrero/jobtrack/internal/store"
	"github.com/dmarrero/jobtrack/internal/validators"
	"github.com/dmarrero/jobtrack/models"
)

func newTestJobService(t *testing.T, ctrl *gomock.Controller) (JobService, *mock.MockJobRepository) {
	t.Helper()

	mockJobs := mock.NewMockJobRepository(ctrl)
	return NewJobService(mockJobs, logger.Nop()), mockJobs
}

func ownedJob(jobID, userID int64) models.Job {
	return models.Job{
		JobID:    jobID,
		UserID:   userID,
		Status:   models.StatusViewed,
		Title:    "Go Developer",
		Company:  "Initech",
		URL:      "https://jobs.example/1",
		Location: "Austin, TX",
		Note:     models.DefaultNote,
	}
}

// ── CreateJob ────────────────────────────────────────────────────────────────

func TestJobService_CreateJob_DefaultsToApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJobs := newTestJobService(t, ctrl)
	ctx := context.Background()

	req := models.CreateJobRequest{
		Title:    "Go Developer",
		Company:  "Initech",
		URL:      "https://jobs.example/1",
		Location: "Austin, TX",
	}

	mockJobs.EXPECT().
		CreateJob(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, job models.Job) (models.Job, error) {
			assert.Equal(t, int64(42), job.UserID)
			assert.Equal(t, models.StatusApplied, job.Status)
			assert.Equal(t, models.DefaultNote, job.Note)
			assert.False(t, job.DateSubmitted.IsZero())

			job.JobID = 7
			return job, nil
		})

	created, err := svc.CreateJob(ctx, 42, req)

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.JobID)
}

func TestJobService_CreateJob_ExplicitStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJobs := newTestJobService(t, ctrl)
	ctx := context.Background()

	req := models.CreateJobRequest{
		Status:   models.StatusInterviewing,
		Title:    "Go Developer",
		Company:  "Initech",
		URL:      "https://jobs.example/1",
		Location: "Austin, TX",
	}

	mockJobs.EXPECT().
		CreateJob(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, job models.Job) (models.Job, error) {
			assert.Equal(t, models.StatusInterviewing, job.Status)
			return job, nil
		})

	_, err := svc.CreateJob(ctx, 42, req)

	require.NoError(t, err)
}

func TestJobService_CreateJob_BlankFields(t *testing.T) {
	tests := []struct {
		name       string
		req        models.CreateJobRequest
		wantFields map[string]string
	}{
		{
			name: "missing title",
			req:  models.CreateJobRequest{Company: "Initech", URL: "u", Location: "l"},
			wantFields: map[string]string{
				validators.FieldTitle: validators.MsgTitleRequired,
			},
		},
		{
			name: "whitespace location",
			req:  models.CreateJobRequest{Title: "t", Company: "Initech", URL: "u", Location: "   "},
			wantFields: map[string]string{
				validators.FieldLocation: validators.MsgLocationRequired,
			},
		},
		{
			name: "everything blank",
			req:  models.CreateJobRequest{},
			wantFields: map[string]string{
				validators.FieldTitle:    validators.MsgTitleRequired,
				validators.FieldCompany:  validators.MsgCompanyRequired,
				validators.FieldURL:      validators.MsgURLRequired,
				validators.FieldLocation: validators.MsgLocationRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _ := newTestJobService(t, ctrl)

			_, err := svc.CreateJob(context.Background(), 42, tt.req)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantFields, validationErr.Fields)
		})
	}
}

func TestJobService_CreateJob_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateJobRequest
		wantErr error
	}{
		{
			name: "unknown status",
			req: models.CreateJobRequest{
				Status: "Daydreaming", Title: "t", Company: "c", URL: "u", Location: "l",
			},
			wantErr: ErrInvalidJobStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _ := newTestJobService(t, ctrl)

			_, err := svc.CreateJob(context.Background(), 42, tt.req)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── SaveJob ──────────────────────────────────────────────────────────────────

func TestJobService_SaveJob_SubstitutesSentinels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJobs := newTestJobService(t, ctrl)
	ctx := context.Background()

	req := models.SaveJobRequest{
		Title:   "Go Developer",
		URL:     "https://jobs.example/1",
		Company: "   ", // blank values are treated the same as absent ones
	}

	mockJobs.EXPECT().
		CreateJob(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, job models.Job) (models.Job, error) {
			assert.Equal(t, models.StatusViewed, job.Status)
			assert.Equal(t, "Go Developer", job.Title)
			assert.Equal(t, models.NoneProvided, job.Company)
			assert.Equal(t, models.NoneProvided, job.Location)
			assert.Equal(t, "https://jobs.example/1", job.URL)
			assert.Equal(t, models.DefaultNote, job.Note)
			return job, nil
		})

	_, err := svc.SaveJob(ctx, 42, req)

	require.NoError(t, err)
}

// ── Ownership ────────────────────────────────────────────────────────────────

func TestJobService_GetJob(t *testing.T) {
	tests := []struct {
		name    string
		stored  models.Job
		lookup  error
		wantErr error
	}{
		{name: "owned record", stored: ownedJob(7, 42)},
		{name: "missing record", lookup: store.ErrJobNotFound, wantErr: store.ErrJobNotFound},
		{name: "someone else's record", stored: ownedJob(7, 99), wantErr: ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockJobs := newTestJobService(t, ctrl)
			ctx := context.Background()

			mockJobs.EXPECT().GetJobByID(ctx, int64(7)).Return(tt.stored, tt.lookup)

			job, err := svc.GetJob(ctx, 42, 7)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.stored, job)
		})
	}
}

func TestJobService_ListJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJobs := newTestJobService(t, ctrl)
	ctx := context.Background()

	jobs := []models.Job{ownedJob(1, 42), ownedJob(2, 42)}
	mockJobs.EXPECT().ListJobsByUser(ctx, int64(42)).Return(jobs, nil)

	listed, err := svc.ListJobs(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, jobs, listed)
}

// ── UpdateJob ────────────────────────────────────────────────────────────────

func TestJobService_UpdateJob_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJobs := newTestJobService(t, ctrl)
	ctx := context.Background()

	offered := models.StatusOffered
	update := models.JobUpdate{Status: &offered}

	refreshed := ownedJob(7, 42)
	refreshed.Status = models.StatusOffered

	gomock.InOrder(
		mockJobs.EXPECT().GetJobByID(ctx, int64(7)).Return(ownedJob(7, 42), nil),
		mockJobs.EXPECT().UpdateJob(ctx, int64(7), update).Return(nil),
		mockJobs.EXPECT().GetJobByID(ctx, int64(7)).Return(refreshed, nil),
	)

	job, err := svc.UpdateJob(ctx, 42, 7, update)

	require.NoError(t, err)
	assert.Equal(t, models.StatusOffered, job.Status)
}

func TestJobService_UpdateJob_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestJobService(t, ctrl)
	ctx := context.Background()

	_, err := svc.UpdateJob(ctx, 42, 7, models.JobUpdate{})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	bogus := models.JobStatus("Daydreaming")
	_, err = svc.UpdateJob(ctx, 42, 7, models.JobUpdate{Status: &bogus})
	require.ErrorIs(t, err, ErrInvalidJobStatus)
}

func TestJobService_UpdateJob_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJobs := newTestJobService(t, ctrl)
	ctx := context.Background()

	offered := models.StatusOffered
	mockJobs.EXPECT().GetJobByID(ctx, int64(7)).Return(ownedJob(7, 99), nil)

	_, err := svc.UpdateJob(ctx, 42, 7, models.JobUpdate{Status: &offered})

	require.ErrorIs(t, err, ErrNotOwner)
}

// ── UpdateNote ───────────────────────────────────────────────────────────────

func TestJobService_UpdateNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJobs := newTestJobService(t, ctrl)
	ctx := context.Background()

	refreshed := ownedJob(7, 42)
	refreshed.Note = "Recruiter said to follow up next week"

	gomock.InOrder(
		mockJobs.EXPECT().GetJobByID(ctx, int64(7)).Return(ownedJob(7, 42), nil),
		mockJobs.EXPECT().UpdateNote(ctx, int64(7), "Recruiter said to follow up next week").Return(nil),
		mockJobs.EXPECT().GetJobByID(ctx, int64(7)).Return(refreshed, nil),
	)

	job, err := svc.UpdateNote(ctx, 42, 7, "Recruiter said to follow up next week")

	require.NoError(t, err)
	assert.Equal(t, refreshed.Note, job.Note)
}

// ── DeleteJob ────────────────────────────────────────────────────────────────

func TestJobService_DeleteJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJobs := newTestJobService(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockJobs.EXPECT().GetJobByID(ctx, int64(7)).Return(ownedJob(7, 42), nil),
		mockJobs.EXPECT().DeleteJob(ctx, int64(7)).Return(nil),
	)

	require.NoError(t, svc.DeleteJob(ctx, 42, 7))
}

func TestJobService_DeleteJob_AlreadyGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJobs := newTestJobService(t, ctrl)
	ctx := context.Background()

	mockJobs.EXPECT().GetJobByID(ctx, int64(7)).Return(models.Job{}, store.ErrJobNotFound)

	err := svc.DeleteJob(ctx, 42, 7)

	require.ErrorIs(t, err, store.ErrJobNotFound)
}

// ── Triage ───────────────────────────────────────────────────────────────────

func TestJobService_Triage_Yes_PromotesToApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJobs := newTestJobService(t, ctrl)
	ctx := context.Background()

	promoted := ownedJob(7, 42)
	promoted.Status = models.StatusApplied

	gomock.InOrder(
		mockJobs.EXPECT().GetJobByID(ctx, int64(7)).Return(ownedJob(7, 42), nil),
		mockJobs.EXPECT().
			UpdateJob(ctx, int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, update models.JobUpdate) error {
				require.NotNil(t, update.Status)
				assert.Equal(t, models.StatusApplied, *update.Status)
				return nil
			}),
		mockJobs.EXPECT().GetJobByID(ctx, int64(7)).Return(promoted, nil),
	)

	job, kept, err := svc.Triage(ctx, 42, 7, models.TriageRequest{Applied: "yes"})

	require.NoError(t, err)
	assert.True(t, kept)
	assert.Equal(t, models.StatusApplied, job.Status)
}

func TestJobService_Triage_No_DeletesRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJobs := newTestJobService(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockJobs.EXPECT().GetJobByID(ctx, int64(7)).Return(ownedJob(7, 42), nil),
		mockJobs.EXPECT().DeleteJob(ctx, int64(7)).Return(nil),
	)

	job, kept, err := svc.Triage(ctx, 42, 7, models.TriageRequest{Applied: "No"})

	require.NoError(t, err)
	assert.False(t, kept)
	assert.Zero(t, job)
}

func TestJobService_Triage_InvalidAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestJobService(t, ctrl)

	_, _, err := svc.Triage(context.Background(), 42, 7, models.TriageRequest{Applied: "maybe"})

	require.ErrorIs(t, err, ErrInvalidTriageAnswer)
}
