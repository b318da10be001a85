package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoadHonorsDotPath(t *testing.T) {
	t.Setenv("MB_TOKEN", "123:abc")
	t.Setenv("MB_DOT_PATH", "~/custom-dot")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("user home dir: %v", err)
	}
	want := strings.Replace("~/custom-dot", "~", home, 1)
	if cfg.DotPath != want {
		t.Fatalf("dot path = %q, want %q", cfg.DotPath, want)
	}
	if cfg.TelegramAPIToken != "123:abc" {
		t.Fatalf("token = %q, want the prefixed env value", cfg.TelegramAPIToken)
	}
}
