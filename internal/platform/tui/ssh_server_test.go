package tui

import (
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func testSSHServerConfig(t *testing.T, addr string) SSHServerConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = addr
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "raymarch.db")
	cfg.Logger = log.New(io.Discard)
	return cfg
}

func TestResolveHostKeyPathCreatesDirectory(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "host_key")

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath() failed: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory was not created: %v", err)
	}
}

func TestSSHServerStopsOnContext(t *testing.T) {
	srv, err := NewSSHServer(testSSHServerConfig(t, "127.0.0.1:0"))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() after cancel = %v, want nil", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestSSHServerReportsListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() failed: %v", err)
	}
	defer busy.Close()

	srv, err := NewSSHServer(testSSHServerConfig(t, busy.Addr().String()))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(context.Background()) }()

	select {
	case err := <-done:
		if err == nil {
			t.Error("ListenAndServe() on a busy port should fail")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("listen failure was not reported")
	}
}
