// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Marrero

package validators

import (
	"strings"

	"github.com/dmarrero/jobtrack/models"
)

// Field names used as keys of the job validation error maps.
const (
	FieldTitle    = "title"
	FieldCompany  = "company"
	FieldURL      = "url"
	FieldLocation = "location"
)

// Human-readable job validation messages.
const (
	MsgTitleRequired    = "Title is required"
	MsgCompanyRequired  = "Company is required"
	MsgURLRequired      = "URL is required"
	MsgLocationRequired = "Location is required"
)

// JobValidator checks job payloads the same way CredentialValidator checks
// credentials: every rule is evaluated independently and the result is a
// field-to-message map with one message per form field.
type JobValidator struct{}

// NewJobValidator constructs a ready-to-use JobValidator.
func NewJobValidator() *JobValidator {
	return &JobValidator{}
}

// ValidateCreation checks a create-job payload. Title, company, URL and
// location are each required to be non-blank; whitespace-only values count
// as blank.
//
// Returns a field-to-message map; an empty map means the input is valid.
func (v *JobValidator) ValidateCreation(req models.CreateJobRequest) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(req.Title) == "" {
		errs[FieldTitle] = MsgTitleRequired
	}

	if strings.TrimSpace(req.Company) == "" {
		errs[FieldCompany] = MsgCompanyRequired
	}

	if strings.TrimSpace(req.URL) == "" {
		errs[FieldURL] = MsgURLRequired
	}

	if strings.TrimSpace(req.Location) == "" {
		errs[FieldLocation] = MsgLocationRequired
	}

	return errs
}
