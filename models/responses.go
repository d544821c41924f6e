package models

// ErrorResponse is the structured payload returned for every failed request:
// either a field-to-message map produced by validation, or a single message.
type ErrorResponse struct {
	// Errors maps a request field name to a human-readable message.
	// Present on validation failures.
	Errors map[string]string `json:"errors,omitempty"`

	// Message is a single human-readable error description, used when the
	// failure is not tied to a particular field.
	Message string `json:"message,omitempty"`
}

// ConfirmationResponse acknowledges a successful mutation that has no
// record to return, such as a deletion or a logout.
type ConfirmationResponse struct {
	Message string `json:"message"`
}

// SearchResult is one job listing returned by the external job search API,
// reduced to the fields the tracker cares about.
type SearchResult struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
