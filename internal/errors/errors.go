package errors

import (
	"errors"
)

// Moderation error taxonomy. Every error is local to a single invocation;
// the update processor maps these to user-visible replies.
var (
	ErrMissingReason         = errors.New("missing reason")
	ErrMissingDuration       = errors.New("missing duration")
	ErrInvalidDurationFormat = errors.New("invalid duration format")
	ErrUserNotReplied        = errors.New("user not replied")
	ErrNotAuthorized         = errors.New("not authorized")
	ErrTargetIsPrivileged    = errors.New("target is privileged")
)
