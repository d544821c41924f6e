package adapter

import "errors"

var (
	// ErrSearchUnavailable is returned for any upstream failure: the request
	// could not be sent, timed out, or came back with a non-2xx status.
	// Callers map it to an upstream-failure response.
	ErrSearchUnavailable = errors.New("job search upstream unavailable")
)
