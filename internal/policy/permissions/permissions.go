package permissions

import api "github.com/OvyFlash/telegram-bot-api"

// IsElevated reports admin/owner status, the privilege gate for punitive
// commands.
func IsElevated(member *api.ChatMember) bool {
	if member == nil {
		return false
	}
	return member.IsCreator() || member.IsAdministrator()
}
