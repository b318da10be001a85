package moderation

// Command options are plain value records built with value-receiver With
// methods, so applying a modifier twice is the same as applying it once
// and a built value can never be mutated by a later caller.

// MuteOptions shape a mute invocation. Invert turns the command into its
// reversing counterpart; Timer and Delete are ignored while inverted.
type MuteOptions struct {
	Delete bool
	Silent bool
	Timer  bool
	Invert bool
}

func (o MuteOptions) WithDelete() MuteOptions { o.Delete = true; return o }
func (o MuteOptions) WithSilent() MuteOptions { o.Silent = true; return o }
func (o MuteOptions) WithTimer() MuteOptions  { o.Timer = true; return o }
func (o MuteOptions) WithInvert() MuteOptions { o.Invert = true; return o }

// BanOptions shape a ban invocation, with the same modifier semantics as
// MuteOptions.
type BanOptions struct {
	Delete bool
	Silent bool
	Timer  bool
	Invert bool
}

func (o BanOptions) WithDelete() BanOptions { o.Delete = true; return o }
func (o BanOptions) WithSilent() BanOptions { o.Silent = true; return o }
func (o BanOptions) WithTimer() BanOptions  { o.Timer = true; return o }
func (o BanOptions) WithInvert() BanOptions { o.Invert = true; return o }

// KickOptions shape a kick invocation. Kick has no timed or inverted
// form.
type KickOptions struct {
	Delete bool
	Silent bool
}

func (o KickOptions) WithDelete() KickOptions { o.Delete = true; return o }
func (o KickOptions) WithSilent() KickOptions { o.Silent = true; return o }

// StrikeOp selects the strike subcommand.
type StrikeOp string

const (
	StrikeGet   StrikeOp = "get"
	StrikeReset StrikeOp = "reset"
)

type StrikeOptions struct {
	Op StrikeOp
}
