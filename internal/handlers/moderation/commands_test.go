package moderation

import "testing"

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		command string
		want    Command
		wantOK  bool
	}{
		{name: "plain mute", command: "mute", want: Command{Kind: KindMute}, wantOK: true},
		{name: "plain ban", command: "ban", want: Command{Kind: KindBan}, wantOK: true},
		{name: "plain kick", command: "kick", want: Command{Kind: KindKick}, wantOK: true},
		{
			name:    "modifiers in one order",
			command: "dtmute",
			want:    Command{Kind: KindMute, Mute: MuteOptions{Delete: true, Timer: true}},
			wantOK:  true,
		},
		{
			name:    "modifiers in another order",
			command: "tdmute",
			want:    Command{Kind: KindMute, Mute: MuteOptions{Delete: true, Timer: true}},
			wantOK:  true,
		},
		{
			name:    "repeated modifier is harmless",
			command: "ddtmute",
			want:    Command{Kind: KindMute, Mute: MuteOptions{Delete: true, Timer: true}},
			wantOK:  true,
		},
		{
			name:    "full house ban",
			command: "dstban",
			want:    Command{Kind: KindBan, Ban: BanOptions{Delete: true, Silent: true, Timer: true}},
			wantOK:  true,
		},
		{
			name:    "silent delete kick",
			command: "dskick",
			want:    Command{Kind: KindKick, Kick: KickOptions{Delete: true, Silent: true}},
			wantOK:  true,
		},
		{
			name:    "unmute inverts",
			command: "unmute",
			want:    Command{Kind: KindMute, Mute: MuteOptions{Invert: true}},
			wantOK:  true,
		},
		{
			name:    "unban inverts",
			command: "unban",
			want:    Command{Kind: KindBan, Ban: BanOptions{Invert: true}},
			wantOK:  true,
		},
		{name: "kick takes no timer", command: "tkick"},
		{name: "unknown modifier letter", command: "xmute"},
		{name: "case sensitive", command: "Mute"},
		{name: "unrelated command", command: "start"},
		{name: "inverted form takes no modifiers", command: "dunmute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseCommand(tt.command)
			if ok != tt.wantOK {
				t.Fatalf("ParseCommand(%q) ok = %v, want %v", tt.command, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.command, got, tt.want)
			}
		})
	}
}

func TestOptionsAreImmutableValues(t *testing.T) {
	t.Parallel()

	base := MuteOptions{}
	timed := base.WithTimer()
	if base.Timer {
		t.Error("WithTimer mutated the receiver")
	}
	if timed != timed.WithTimer() {
		t.Error("applying the same modifier twice changed the value")
	}

	full := BanOptions{}.WithDelete().WithSilent().WithTimer()
	want := BanOptions{Delete: true, Silent: true, Timer: true}
	if full != want {
		t.Errorf("chained options = %+v, want %+v", full, want)
	}
}
