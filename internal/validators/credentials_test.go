package validators

import (
	"strings"
	"testing"

	"github.com/dmarrero/jobtrack/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateRegistration_TableTest(t *testing.T) {
	v := NewCredentialValidator()

	tests := []struct {
		name          string
		req           models.RegisterRequest
		usernameTaken bool
		wantErrs      map[string]string
	}{
		{
			name: "valid input",
			req: models.RegisterRequest{
				Username:        "alice123",
				Password:        "password1",
				ConfirmPassword: "password1",
			},
			wantErrs: map[string]string{},
		},
		{
			name: "username too short",
			req: models.RegisterRequest{
				Username:        "al",
				Password:        "password1",
				ConfirmPassword: "password1",
			},
			wantErrs: map[string]string{FieldUsername: MsgUsernameTooShort},
		},
		{
			name: "username at lower bound",
			req: models.RegisterRequest{
				Username:        "abc",
				Password:        "password1",
				ConfirmPassword: "password1",
			},
			wantErrs: map[string]string{},
		},
		{
			name: "username at upper bound",
			req: models.RegisterRequest{
				Username:        strings.Repeat("a", 29),
				Password:        "password1",
				ConfirmPassword: "password1",
			},
			wantErrs: map[string]string{},
		},
		{
			name: "username too long",
			req: models.RegisterRequest{
				Username:        strings.Repeat("a", 30),
				Password:        "password1",
				ConfirmPassword: "password1",
			},
			wantErrs: map[string]string{FieldUsername: MsgUsernameTooLong},
		},
		{
			// 29 characters but 58 bytes; length is counted in characters.
			name: "multibyte username at upper bound",
			req: models.RegisterRequest{
				Username:        strings.Repeat("é", 29),
				Password:        "password1",
				ConfirmPassword: "password1",
			},
			wantErrs: map[string]string{},
		},
		{
			name: "password too short",
			req: models.RegisterRequest{
				Username:        "alice123",
				Password:        "short",
				ConfirmPassword: "short",
			},
			wantErrs: map[string]string{FieldPassword: MsgPasswordTooShort},
		},
		{
			name: "mismatch overwrites length message",
			req: models.RegisterRequest{
				Username:        "alice123",
				Password:        "short",
				ConfirmPassword: "different",
			},
			wantErrs: map[string]string{FieldPassword: MsgPasswordMismatch},
		},
		{
			name: "username taken",
			req: models.RegisterRequest{
				Username:        "alice123",
				Password:        "password1",
				ConfirmPassword: "password1",
			},
			usernameTaken: true,
			wantErrs:      map[string]string{FieldUsername: MsgUsernameTaken},
		},
		{
			name: "taken overwrites length message",
			req: models.RegisterRequest{
				Username:        "al",
				Password:        "password1",
				ConfirmPassword: "password1",
			},
			usernameTaken: true,
			wantErrs:      map[string]string{FieldUsername: MsgUsernameTaken},
		},
		{
			name:     "everything wrong at once",
			req:      models.RegisterRequest{Username: "a", Password: "x", ConfirmPassword: "y"},
			wantErrs: map[string]string{FieldUsername: MsgUsernameTooShort, FieldPassword: MsgPasswordMismatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ValidateRegistration(tt.req, tt.usernameTaken)
			assert.Equal(t, tt.wantErrs, got)
		})
	}
}

func TestValidateLogin_TableTest(t *testing.T) {
	v := NewCredentialValidator()

	tests := []struct {
		name           string
		req            models.LoginRequest
		usernameExists bool
		wantErrs       map[string]string
	}{
		{
			name:           "valid input",
			req:            models.LoginRequest{Username: "alice123", Password: "password1"},
			usernameExists: true,
			wantErrs:       map[string]string{},
		},
		{
			name:           "password too short",
			req:            models.LoginRequest{Username: "alice123", Password: "short"},
			usernameExists: true,
			wantErrs:       map[string]string{FieldPassword: MsgPasswordTooShort},
		},
		{
			name:           "username too short",
			req:            models.LoginRequest{Username: "al", Password: "password1"},
			usernameExists: true,
			wantErrs:       map[string]string{FieldUsername: MsgUsernameTooShort},
		},
		{
			name:     "unknown username gets generic message",
			req:      models.LoginRequest{Username: "ghost999", Password: "password1"},
			wantErrs: map[string]string{FieldUsername: MsgWrongCredentials},
		},
		{
			name:     "generic message overwrites length message",
			req:      models.LoginRequest{Username: "al", Password: "password1"},
			wantErrs: map[string]string{FieldUsername: MsgWrongCredentials},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ValidateLogin(tt.req, tt.usernameExists)
			assert.Equal(t, tt.wantErrs, got)
		})
	}
}
