package models

import "time"

// JobStatus is the enumerated label describing where a tracked job
// application currently stands.
type JobStatus string

// All status labels a job record may carry. StatusViewed is the storage
// default; records created through the authenticated API default to
// StatusApplied instead.
const (
	StatusViewed        JobStatus = "Viewed"
	StatusApplied       JobStatus = "Applied"
	StatusInterviewing  JobStatus = "Interviewing"
	StatusOffered       JobStatus = "Offered"
	StatusAccepted      JobStatus = "Accepted"
	StatusRejected      JobStatus = "Rejected"
	StatusNotInterested JobStatus = "Not Interested"
	StatusGhosted       JobStatus = "Ghosted"
)

// Valid reports whether s is one of the known status labels.
func (s JobStatus) Valid() bool {
	switch s {
	case StatusViewed, StatusApplied, StatusInterviewing, StatusOffered,
		StatusAccepted, StatusRejected, StatusNotInterested, StatusGhosted:
		return true
	}
	return false
}

// NoneProvided is the sentinel substituted for absent or blank free-text
// fields on the legacy save path (a job saved straight from search results).
const NoneProvided = "None Provided"

// DefaultNote is the placeholder note every new job record starts with.
const DefaultNote = "Enter text here"

// Job represents one tracked job application owned by exactly one user.
// Ownership is never transferred; only the owner may read or mutate the
// record.
type Job struct {
	// JobID is the unique identifier of the record.
	JobID int64 `json:"id"`

	// UserID references the owning account. Not exposed via JSON.
	UserID int64 `json:"-"`

	// Status is one of the JobStatus labels.
	Status JobStatus `json:"status"`

	Title    string `json:"title"`
	Company  string `json:"company"`
	URL      string `json:"url"`
	Location string `json:"location"`

	// Note is free text attached to the record, updated through a
	// dedicated operation separate from the generic update.
	Note string `json:"note"`

	// DateSubmitted is the date the application was submitted.
	// Defaults to the creation date.
	DateSubmitted time.Time `json:"date_submitted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Job model.
func (j Job) TableName() string {
	return "jobs"
}

// JobUpdate describes a partial update of a job record. Nil fields are left
// untouched; each non-nil field is applied independently.
type JobUpdate struct {
	Status   *JobStatus `json:"status,omitempty"`
	Title    *string    `json:"title,omitempty"`
	Company  *string    `json:"company,omitempty"`
	URL      *string    `json:"url,omitempty"`
	Location *string    `json:"location,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u JobUpdate) Empty() bool {
	return u.Status == nil && u.Title == nil && u.Company == nil &&
		u.URL == nil && u.Location == nil
}
