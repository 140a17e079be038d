package lichess

import "errors"

// Sentinel errors for well-defined failure conditions.
var (
	// ErrUserNotFound indicates the upstream lookup returned not found.
	ErrUserNotFound = errors.New("lichess: user not found")

	// ErrUpstreamUnavailable indicates a transport failure or a 5xx
	// from the upstream service. Not retried here; callers decide.
	ErrUpstreamUnavailable = errors.New("lichess: upstream unavailable")

	// ErrParse indicates the upstream response was not the expected shape.
	ErrParse = errors.New("lichess: malformed upstream response")
)
