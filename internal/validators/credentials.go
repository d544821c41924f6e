// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Marrero

// Package validators provides input validation for the credential flows.
//
// Validation results are expressed as a field-name to human-readable-message
// map; an empty map means the input is acceptable. Rules are evaluated
// independently rather than short-circuited, so a later rule may overwrite
// an earlier message on the same field. This mirrors how the messages are
// surfaced to the user: one message per form field.
package validators

import (
	"unicode/utf8"

	"github.com/dmarrero/jobtrack/models"
)

// Field names used as keys of the validation error maps.
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// Human-readable validation messages.
const (
	MsgUsernameTooShort = "Username should be at least 3 characters long"
	MsgUsernameTooLong  = "Username cannot be longer than 30 characters"
	MsgPasswordTooShort = "Password should be at least 8 characters"
	MsgPasswordMismatch = "Passwords do not match"
	MsgUsernameTaken    = "Username is not valid. Please enter a valid username"
	MsgWrongCredentials = "You enter the wrong username or password. Try again"
)

// Length bounds, counted in characters rather than bytes so multibyte
// handles are measured the way a user would count them. Usernames must be
// strictly shorter than usernameMaxLen.
const (
	usernameMinLen = 3
	usernameMaxLen = 30
	passwordMinLen = 8
)

// CredentialValidator checks registration and login input against structural
// rules. Uniqueness and existence of the username are read-only lookups
// performed by the caller and passed in as flags, keeping the validator a
// pure function of its arguments.
type CredentialValidator struct{}

// NewCredentialValidator constructs a ready-to-use CredentialValidator.
func NewCredentialValidator() *CredentialValidator {
	return &CredentialValidator{}
}

// ValidateRegistration checks a registration payload.
//
// Rules, evaluated in order without short-circuiting:
//   - username must be at least 3 and fewer than 30 characters;
//   - password must be at least 8 characters;
//   - password must equal its confirmation (overwrites the length message
//     when both apply);
//   - username must not already be registered (usernameTaken flag).
//
// Returns a field-to-message map; an empty map means the input is valid.
func (v *CredentialValidator) ValidateRegistration(req models.RegisterRequest, usernameTaken bool) map[string]string {
	errs := map[string]string{}

	if utf8.RuneCountInString(req.Username) < usernameMinLen {
		errs[FieldUsername] = MsgUsernameTooShort
	}

	if utf8.RuneCountInString(req.Username) >= usernameMaxLen {
		errs[FieldUsername] = MsgUsernameTooLong
	}

	if utf8.RuneCountInString(req.Password) < passwordMinLen {
		errs[FieldPassword] = MsgPasswordTooShort
	}

	if req.Password != req.ConfirmPassword {
		errs[FieldPassword] = MsgPasswordMismatch
	}

	if usernameTaken {
		errs[FieldUsername] = MsgUsernameTaken
	}

	return errs
}

// ValidateLogin checks a login payload.
//
// The structural rules match registration (password at least 8 characters,
// username at least 3). When no account with the given username exists, a
// deliberately generic wrong-credentials message is set on the username
// field so the response does not disclose whether the handle is registered.
//
// Returns a field-to-message map; an empty map means the input is valid.
func (v *CredentialValidator) ValidateLogin(req models.LoginRequest, usernameExists bool) map[string]string {
	errs := map[string]string{}

	if utf8.RuneCountInString(req.Password) < passwordMinLen {
		errs[FieldPassword] = MsgPasswordTooShort
	}

	if utf8.RuneCountInString(req.Username) < usernameMinLen {
		errs[FieldUsername] = MsgUsernameTooShort
	}

	if !usernameExists {
		errs[FieldUsername] = MsgWrongCredentials
	}

	return errs
}
