package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

import (
	"context"

	"github.com/dmarrero/jobtrack/models"
)

// UserRepository is the data-access contract for account records.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrUsernameAlreadyExists when the username
	// collides with an existing account.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username or
	// ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// ExistsByUsername reports whether an account with the given username
	// is registered. Read-only; used by the credential validator.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// JobRepository is the data-access contract for job records.
type JobRepository interface {
	// CreateJob persists a new job record and returns it with
	// server-assigned fields populated.
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)

	// GetJobByID returns the job record with the given identifier or
	// ErrJobNotFound. Ownership is checked by the caller.
	GetJobByID(ctx context.Context, jobID int64) (models.Job, error)

	// ListJobsByUser returns every job record owned by the given account.
	ListJobsByUser(ctx context.Context, userID int64) ([]models.Job, error)

	// UpdateJob applies the non-nil fields of update to the record with the
	// given identifier. Returns ErrJobNotFound when no row matches.
	UpdateJob(ctx context.Context, jobID int64, update models.JobUpdate) error

	// UpdateNote replaces the note text of the record with the given
	// identifier. Returns ErrJobNotFound when no row matches.
	UpdateNote(ctx context.Context, jobID int64, note string) error

	// DeleteJob permanently removes the record with the given identifier.
	// Returns ErrJobNotFound when no row matches, which makes a repeated
	// delete a deterministic not-found condition.
	DeleteJob(ctx context.Context, jobID int64) error
}
