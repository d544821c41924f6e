package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/models"
)

// jobColumns is the canonical column order used by every SELECT and
// RETURNING clause against the "jobs" table. scanJob must stay in sync.
var jobColumns = []string{
	"job_id", "user_id", "status", "title", "company", "url", "location",
	"note", "date_submitted", "created_at", "updated_at",
}

// jobRepository is the SQL-backed implementation of [JobRepository].
// It executes all job-record CRUD operations against the "jobs" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, job_id, etc.).
type jobRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewJobRepository constructs a [JobRepository] backed by the provided
// database connection and logger.
func NewJobRepository(db *DB, logger *logger.Logger) JobRepository {
	logger.Debug().Msg("creating job repository")
	return &jobRepository{
		db:     db,
		logger: logger,
	}
}

// CreateJob persists a new job record and returns the fully populated
// [models.Job] with server-assigned fields (JobID, CreatedAt, UpdatedAt).
// Defaults (status, note, submission date) are the caller's responsibility;
// the repository writes exactly what it is given.
func (r *jobRepository) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder.
		Insert(job.TableName()).
		Columns("user_id", "status", "title", "company", "url", "location", "note", "date_submitted").
		Values(job.UserID, job.Status, job.Title, job.Company, job.URL, job.Location, job.Note, job.DateSubmitted).
		Suffix("RETURNING " + strings.Join(jobColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.CreateJob").Msg("failed to build insert query")
		return models.Job{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanJob(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*jobRepository.CreateJob").
			Int64("user_id", job.UserID).
			Msg("failed to insert job record")
		return models.Job{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetJobByID retrieves a single job record by its identifier, regardless of
// owner. The service layer compares the record's owner with the session
// identity before acting on it.
//
// Returns [ErrJobNotFound] when no record matches.
func (r *jobRepository) GetJobByID(ctx context.Context, jobID int64) (models.Job, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder.
		Select(jobColumns...).
		From(models.Job{}.TableName()).
		Where("job_id = ?", jobID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.GetJobByID").Msg("failed to build select query")
		return models.Job{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	job, err := scanJob(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Job{}, ErrJobNotFound
		}

		log.Err(err).
			Str("func", "*jobRepository.GetJobByID").
			Int64("job_id", jobID).
			Msg("failed to scan job row")
		return models.Job{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return job, nil
}

// ListJobsByUser returns every job record owned by the given account,
// oldest first. Returns an empty slice when the account owns no records.
func (r *jobRepository) ListJobsByUser(ctx context.Context, userID int64) ([]models.Job, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder.
		Select(jobColumns...).
		From(models.Job{}.TableName()).
		Where("user_id = ?", userID).
		OrderBy("job_id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.ListJobsByUser").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*jobRepository.ListJobsByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for listing user jobs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	jobs := make([]models.Job, 0, 20)

	for rows.Next() {
		var job models.Job

		scanErr := rows.Scan(
			&job.JobID,
			&job.UserID,
			&job.Status,
			&job.Title,
			&job.Company,
			&job.URL,
			&job.Location,
			&job.Note,
			&job.DateSubmitted,
			&job.CreatedAt,
			&job.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*jobRepository.ListJobsByUser").
				Int64("user_id", userID).
				Msg("failed to scan job row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		jobs = append(jobs, job)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*jobRepository.ListJobsByUser").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return jobs, nil
}

// UpdateJob applies a partial update: each non-nil field of update is added
// to the SET clause, absent fields are left untouched. The updated_at column
// is always refreshed.
//
// Returns [ErrJobNotFound] when no row matches the identifier.
func (r *jobRepository) UpdateJob(ctx context.Context, jobID int64, update models.JobUpdate) error {
	log := logger.FromContext(ctx)

	builder := r.db.Builder.
		Update(models.Job{}.TableName()).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where("job_id = ?", jobID)

	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Company != nil {
		builder = builder.Set("company", *update.Company)
	}
	if update.URL != nil {
		builder = builder.Set("url", *update.URL)
	}
	if update.Location != nil {
		builder = builder.Set("location", *update.Location)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.UpdateJob").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, query, args, "*jobRepository.UpdateJob", jobID)
}

// UpdateNote replaces the note text of a job record. Kept separate from
// UpdateJob because the note is edited through its own operation.
//
// Returns [ErrJobNotFound] when no row matches the identifier.
func (r *jobRepository) UpdateNote(ctx context.Context, jobID int64, note string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder.
		Update(models.Job{}.TableName()).
		Set("note", note).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where("job_id = ?", jobID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.UpdateNote").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, query, args, "*jobRepository.UpdateNote", jobID)
}

// DeleteJob permanently removes a job record.
//
// Returns [ErrJobNotFound] when no row matches, so a second delete of the
// same identifier is a deterministic not-found condition rather than a
// silent success.
func (r *jobRepository) DeleteJob(ctx context.Context, jobID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder.
		Delete(models.Job{}.TableName()).
		Where("job_id = ?", jobID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.DeleteJob").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, query, args, "*jobRepository.DeleteJob", jobID)
}

// execExpectingRow executes a DML statement that must affect exactly one
// row; zero affected rows is reported as [ErrJobNotFound].
func (r *jobRepository) execExpectingRow(ctx context.Context, query string, args []any, funcName string, jobID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("job_id", jobID).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("job_id", jobID).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// scanJob scans one row in jobColumns order into a [models.Job].
func scanJob(row *sql.Row) (models.Job, error) {
	var job models.Job

	err := row.Scan(
		&job.JobID,
		&job.UserID,
		&job.Status,
		&job.Title,
		&job.Company,
		&job.URL,
		&job.Location,
		&job.Note,
		&job.DateSubmitted,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return models.Job{}, err
	}

	return job, nil
}
