// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Marrero

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmarrero/jobtrack/internal/config"
	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/internal/session"
	"github.com/dmarrero/jobtrack/internal/store"
	"github.com/dmarrero/jobtrack/internal/utils"
	"github.com/dmarrero/jobtrack/internal/validators"
	"github.com/dmarrero/jobtrack/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification with bcrypt, and the
// session lifecycle: every successful login opens a server-side session
// entry whose identifier is wrapped in a signed JWT handed to the client.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessions is the server-side session table. Logout removes the entry,
	// invalidating the token before its expiry.
	sessions session.Store

	// validator checks registration and login payloads and produces the
	// per-field messages surfaced to the user.
	validator *validators.CredentialValidator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and session table, populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state besides the
// session table is read-only after construction.
func NewAuthService(userRepository store.UserRepository, sessions session.Store, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		sessions:       sessions,
		validator:      validators.NewCredentialValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The payload is checked by the credential validator with a read-only
// username availability lookup; the password is stored as a bcrypt hash.
// A username collision detected at insert time (a lost race against a
// concurrent registration) is reported with the same message as one caught
// by the validator.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - *ValidationError carrying per-field messages if the payload is rejected.
//   - A wrapped storage error if a repository call fails.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	taken, err := a.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("username availability check failed")
		return models.User{}, fmt.Errorf("username availability check failed: %w", err)
	}

	if fields := a.validator.ValidateRegistration(req, taken); len(fields) > 0 {
		log.Info().Str("username", req.Username).Any("fields", fields).Msg("registration payload rejected")
		return models.User{}, NewValidationError(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, NewValidationError(map[string]string{
				validators.FieldUsername: validators.MsgUsernameTaken,
			})
		}

		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The account is looked up by username and the submitted password is
// compared against the stored bcrypt hash. An unknown username and a wrong
// password both produce the same generic message so the response does not
// disclose which of the two was wrong.
//
// Returns the authenticated user record or:
//   - *ValidationError carrying per-field messages if authentication fails.
//   - A wrapped storage error if the repository lookup fails unexpectedly.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	authenticated := err == nil &&
		bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)) == nil

	if fields := a.validator.ValidateLogin(req, authenticated); len(fields) > 0 {
		log.Info().Str("username", req.Username).Msg("login rejected")
		return models.User{}, NewValidationError(fields)
	}

	return foundUser, nil
}

// CreateSession opens a server-side session for the given user and issues a
// signed token referencing it.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, the session identifier as the
// "sub" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if signing fails.
// A signing failure closes the just-opened session again so the table does
// not accumulate entries no client can reference.
func (a *authService) CreateSession(ctx context.Context, user models.User) (models.Token, error) {
	sess := a.sessions.Set(user.UserID, user.Username)

	token, err := utils.GenerateSessionToken(a.tokenIssuer, sess.SessionID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		a.sessions.Clear(sess.SessionID)
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate validates a raw token string and resolves it to an active
// session.
//
// Any token validation failure (expired, wrong issuer or signature,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors. A valid token whose session has
// been cleared by logout yields ErrNoActiveSession.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Session, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	sess, ok := a.sessions.Get(token.SessionID)
	if !ok {
		return models.Session{}, ErrNoActiveSession
	}

	return sess, nil
}

// Logout closes the session with the given identifier. Tokens referencing
// it are rejected from this point on. Closing an unknown session is a no-op.
func (a *authService) Logout(ctx context.Context, sessionID string) {
	a.sessions.Clear(sessionID)
}
