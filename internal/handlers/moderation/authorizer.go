package moderation

import (
	"context"

	"github.com/pkg/errors"

	"github.com/iamwavecut/modbot/internal/policy/permissions"
)

type memberAuthorizer struct {
	platform Platform
}

// NewAuthorizer answers privilege checks with a fresh membership read per
// invocation. Results are authoritative and never cached: a demoted admin
// loses punitive commands immediately.
func NewAuthorizer(platform Platform) Authorizer {
	return &memberAuthorizer{platform: platform}
}

func (a *memberAuthorizer) IsAdmin(ctx context.Context, chatID, userID int64) (bool, error) {
	member, err := a.platform.GetMember(ctx, chatID, userID)
	if err != nil {
		return false, errors.WithMessage(err, "get member")
	}
	return permissions.IsElevated(member), nil
}
