package models

import "time"

// Session is one entry of the server-side session table: the identity of a
// logged-in user keyed by an opaque session identifier presented by the
// client on every request.
//
// A session is created on successful registration or login and removed on
// logout. Removing the entry is the only invalidation mechanism; tokens that
// still reference a cleared session are rejected.
type Session struct {
	// SessionID is the opaque key (a UUID) the client presents, wrapped in
	// a signed token, to prove its identity on subsequent requests.
	SessionID string `json:"-"`

	// UserID is the account the session authenticates as.
	UserID int64 `json:"-"`

	// Username is the handle of the authenticated account, cached here so
	// "current user" lookups do not need a database round trip.
	Username string `json:"username"`

	// CreatedAt is the time the session was opened.
	CreatedAt time.Time `json:"-"`
}
