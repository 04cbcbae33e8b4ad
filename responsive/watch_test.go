package responsive

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTokens(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.yaml")
	writeTokens(t, path, "max_width: 1280\n")

	configs := make(chan Config, 4)
	w, err := WatchConfig(path, func(c Config) { configs <- c },
		WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("WatchConfig() error: %v", err)
	}
	defer w.Close()

	writeTokens(t, path, "max_width: 1600\n")

	select {
	case cfg := <-configs:
		if cfg.MaxWidth != 1600 {
			t.Errorf("reloaded MaxWidth = %g, want 1600", cfg.MaxWidth)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatchConfig_InvalidFileReportsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.yaml")
	writeTokens(t, path, "max_width: 1280\n")

	configs := make(chan Config, 4)
	errs := make(chan error, 4)
	w, err := WatchConfig(path, func(c Config) { configs <- c },
		WithDebounce(20*time.Millisecond),
		WithErrorHandler(func(e error) { errs <- e }))
	if err != nil {
		t.Fatalf("WatchConfig() error: %v", err)
	}
	defer w.Close()

	writeTokens(t, path, "breakpoints: {mobile: 1300, tablet: 1200}\n")

	select {
	case e := <-errs:
		if e == nil {
			t.Error("error handler received nil")
		}
	case cfg := <-configs:
		t.Errorf("invalid file produced a config: %+v", cfg)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatchConfig_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.yaml")
	writeTokens(t, path, "max_width: 1280\n")

	configs := make(chan Config, 4)
	w, err := WatchConfig(path, func(c Config) { configs <- c },
		WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("WatchConfig() error: %v", err)
	}
	defer w.Close()

	writeTokens(t, filepath.Join(dir, "other.yaml"), "max_width: 99\n")

	select {
	case cfg := <-configs:
		t.Errorf("sibling file write produced a config: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
		// No reload: sibling files are filtered out.
	}
}

func TestWatchConfig_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.yaml")
	writeTokens(t, path, "max_width: 1280\n")

	w, err := WatchConfig(path, func(Config) {})
	if err != nil {
		t.Fatalf("WatchConfig() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

func TestWatchConfig_MissingDir(t *testing.T) {
	_, err := WatchConfig(filepath.Join(t.TempDir(), "nope", "tokens.yaml"), func(Config) {})
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
