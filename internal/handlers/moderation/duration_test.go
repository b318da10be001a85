package moderation

import (
	"errors"
	"testing"

	apperrors "github.com/iamwavecut/modbot/internal/errors"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   string
		want    int64
		wantErr bool
	}{
		{name: "minutes", token: "10m", want: 600},
		{name: "hours", token: "2h", want: 7200},
		{name: "days", token: "3d", want: 259200},
		{name: "single minute", token: "1m", want: 60},
		{name: "zero is valid grammar", token: "0h", want: 0},
		{name: "bare number", token: "10", wantErr: true},
		{name: "unknown unit", token: "10x", wantErr: true},
		{name: "unit before digits", token: "h10", wantErr: true},
		{name: "empty", token: "", wantErr: true},
		{name: "unit only", token: "m", wantErr: true},
		{name: "trailing remainder", token: "10mm", wantErr: true},
		{name: "negative", token: "-5m", wantErr: true},
		{name: "overflowing digit run", token: "9999999999999999999m", wantErr: true},
		{name: "longest accepted run", token: "999999999d", want: 999999999 * 86400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDuration(tt.token)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidDurationFormat) {
					t.Fatalf("ParseDuration(%q) err = %v, want ErrInvalidDurationFormat", tt.token, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDuration(%q) unexpected error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}
