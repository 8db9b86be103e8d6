package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
)

func TestNewSSHServerNeedsGameFactory(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "runs.db")

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("expected an error without a game factory")
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.DBPath = filepath.Join(dir, "runs.db")
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.NewGame = func(config.DifficultyPreset) (Game, error) { return &fakeGame{}, nil }

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, want %q", srv.Addr(), cfg.Address)
	}
	if srv.store == nil {
		t.Error("runs database was not opened")
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}
