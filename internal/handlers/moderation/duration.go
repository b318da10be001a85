package moderation

import (
	apperrors "github.com/iamwavecut/modbot/internal/errors"
)

const (
	secondsPerMinute int64 = 60
	secondsPerHour   int64 = 60 * 60
	secondsPerDay    int64 = 24 * 60 * 60
)

// ParseDuration converts a duration token of the form <digits><unit> into
// seconds, where the unit is exactly one of m, h or d. Anything else,
// including a bare number or a trailing remainder, is rejected with
// ErrInvalidDurationFormat.
func ParseDuration(token string) (int64, error) {
	if len(token) < 2 {
		return 0, apperrors.ErrInvalidDurationFormat
	}

	digits, unit := token[:len(token)-1], token[len(token)-1]
	// nine digits is ample for any real window and keeps the seconds
	// arithmetic clear of overflow
	if len(digits) > 9 {
		return 0, apperrors.ErrInvalidDurationFormat
	}
	var value int64
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, apperrors.ErrInvalidDurationFormat
		}
		value = value*10 + int64(digits[i]-'0')
	}

	switch unit {
	case 'm':
		return value * secondsPerMinute, nil
	case 'h':
		return value * secondsPerHour, nil
	case 'd':
		return value * secondsPerDay, nil
	}
	return 0, apperrors.ErrInvalidDurationFormat
}
