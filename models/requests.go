package models

// RegisterRequest is the payload of the account registration operation.
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the payload of the login operation.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateJobRequest is the payload of the authenticated job-creation
// operation. Title, Company, URL and Location are all required; Status is
// optional and defaults to StatusApplied.
type CreateJobRequest struct {
	Status   JobStatus `json:"status,omitempty"`
	Title    string    `json:"title"`
	Company  string    `json:"company"`
	URL      string    `json:"url"`
	Location string    `json:"location"`
}

// SaveJobRequest is the payload of the legacy save path used when a user
// saves a job straight from search results. Absent or blank fields are
// substituted with the NoneProvided sentinel and the record starts in
// StatusViewed.
type SaveJobRequest struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	URL      string `json:"url"`
	Location string `json:"location"`
}

// UpdateNoteRequest is the payload of the note-update operation.
type UpdateNoteRequest struct {
	Note string `json:"note"`
}

// TriageRequest answers the "applied?" question for a record in
// StatusViewed: "yes" promotes it to StatusApplied, "no" deletes it.
type TriageRequest struct {
	Applied string `json:"applied"`
}
