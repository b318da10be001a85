package moderation

import (
	"strings"

	api "github.com/OvyFlash/telegram-bot-api"
)

// Kind enumerates the punitive command families.
type Kind int

const (
	KindMute Kind = iota
	KindBan
	KindKick
)

// Command is a parsed punitive command with its modifier options.
type Command struct {
	Kind Kind
	Mute MuteOptions
	Ban  BanOptions
	Kick KickOptions
}

// Request carries everything a single command invocation operates on.
// Target fields come from the replied-to message and stay zero when the
// command was not issued as a reply.
type Request struct {
	ChatID          int64
	Actor           *api.User
	Target          *api.User
	TargetMessageID int
	TargetText      string
	Args            []string
	Lang            string
}

// ParseCommand resolves a command name of the mute/ban/kick family into
// its kind and options. Modifier letters prefix the base verb in any
// order and repetition is harmless: /dtmute, /tdmute and /ddtmute all
// mean the same invocation. Parsing is case sensitive; anything that is
// not exactly modifiers plus a known verb is reported as not ours.
func ParseCommand(name string) (Command, bool) {
	switch name {
	case "unmute":
		return Command{Kind: KindMute, Mute: MuteOptions{}.WithInvert()}, true
	case "unban":
		return Command{Kind: KindBan, Ban: BanOptions{}.WithInvert()}, true
	}

	if prefix, ok := strings.CutSuffix(name, "mute"); ok {
		opts := MuteOptions{}
		for _, mod := range prefix {
			switch mod {
			case 'd':
				opts = opts.WithDelete()
			case 's':
				opts = opts.WithSilent()
			case 't':
				opts = opts.WithTimer()
			default:
				return Command{}, false
			}
		}
		return Command{Kind: KindMute, Mute: opts}, true
	}

	if prefix, ok := strings.CutSuffix(name, "ban"); ok {
		opts := BanOptions{}
		for _, mod := range prefix {
			switch mod {
			case 'd':
				opts = opts.WithDelete()
			case 's':
				opts = opts.WithSilent()
			case 't':
				opts = opts.WithTimer()
			default:
				return Command{}, false
			}
		}
		return Command{Kind: KindBan, Ban: opts}, true
	}

	if prefix, ok := strings.CutSuffix(name, "kick"); ok {
		opts := KickOptions{}
		for _, mod := range prefix {
			switch mod {
			case 'd':
				opts = opts.WithDelete()
			case 's':
				opts = opts.WithSilent()
			default:
				return Command{}, false
			}
		}
		return Command{Kind: KindKick, Kick: opts}, true
	}

	return Command{}, false
}
