package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

import (
	"context"

	"github.com/dmarrero/jobtrack/models"
)

// AuthService owns the account and session lifecycle: registration, login,
// session token issuance and verification, and logout.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateSession(ctx context.Context, user models.User) (models.Token, error)
	Authenticate(ctx context.Context, tokenString string) (models.Session, error)
	Logout(ctx context.Context, sessionID string)
}

// JobService owns the job-record lifecycle. Every operation that touches an
// existing record verifies that it belongs to the calling account first.
type JobService interface {
	CreateJob(ctx context.Context, userID int64, req models.CreateJobRequest) (models.Job, error)
	SaveJob(ctx context.Context, userID int64, req models.SaveJobRequest) (models.Job, error)
	ListJobs(ctx context.Context, userID int64) ([]models.Job, error)
	GetJob(ctx context.Context, userID, jobID int64) (models.Job, error)
	UpdateJob(ctx context.Context, userID, jobID int64, update models.JobUpdate) (models.Job, error)
	UpdateNote(ctx context.Context, userID, jobID int64, note string) (models.Job, error)
	DeleteJob(ctx context.Context, userID, jobID int64) error
	Triage(ctx context.Context, userID, jobID int64, req models.TriageRequest) (models.Job, bool, error)
}

// SearchService queries the upstream job search API.
type SearchService interface {
	Search(ctx context.Context, what, where string) ([]models.SearchResult, error)
}

// SearchProvider is the outbound contract the search service depends on.
// It is implemented by the adapter package.
type SearchProvider interface {
	Search(ctx context.Context, what, where string) ([]models.SearchResult, error)
}
