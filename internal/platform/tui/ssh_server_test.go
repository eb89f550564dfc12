package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tunehunt/internal/content"
)

func TestSSHSessionsGetOwnPool(t *testing.T) {
	shared := content.NewPool(
		content.Lists{RealArtists: []string{"Adele"}},
		content.Lists{RealArtists: []string{"Mariah Carey"}},
	)

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, shared, nil)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}

	opts := srv.sessionOptions("alice", 100, 30)
	if opts.Pool == shared {
		t.Fatal("session should not share the pool object")
	}
	if opts.Width != 100 || opts.Height != 30 || opts.TickRate != cfg.TickRate {
		t.Errorf("options = %+v", opts)
	}

	opts.Pool.SetThemeVariant(content.Themed)
	if shared.ThemeVariant() != content.Standard {
		t.Error("a session's theme switch leaked into the shared pool")
	}
	if got := opts.Pool.Snapshot(content.Standard).RealArtists; len(got) != 1 || got[0] != "Adele" {
		t.Errorf("session pool lists = %v", got)
	}
}
