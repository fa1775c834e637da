package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transform.toml")
	if err := os.WriteFile(path, []byte("[animation]\nspin_rate = 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	// unrelated files in the same directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[animation]\nspin_rate = 42.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			if cfg.Animation.SpinRate == 42 {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatcherReportsBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transform.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	if err := os.WriteFile(path, []byte("[output]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-w.Errors():
		if err == nil {
			t.Error("nil error published")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no error observed")
	}
}

func TestWatcherNeverPublishesTruncatedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transform.toml")
	if err := os.WriteFile(path, []byte("[animation]\nspin_rate = 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	// no debounce: every write event reads the file straight away
	w.SetDebounce(0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	for i := 0; i < 20; i++ {
		if err := os.WriteFile(path, []byte("[animation]\nspin_rate = 42.0\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	var seen []float32
	deadline := time.After(2 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			if *cfg == *Default() {
				t.Fatalf("defaults published from a file that never held them")
			}
			seen = append(seen, cfg.Animation.SpinRate)
		case <-deadline:
			if len(seen) == 0 {
				t.Fatal("no reload observed")
			}
			for _, spin := range seen {
				if spin != 42 {
					t.Errorf("published spin_rate %v, want 42", spin)
				}
			}
			return
		}
	}
}

func TestWatcherDebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transform.toml")
	if err := os.WriteFile(path, []byte("[animation]\nspin_rate = 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	w.SetDebounce(200 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	// truncate, then write: the reload sees only the final content
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("[animation]\nspin_rate = 7.0\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates():
		if cfg.Animation.SpinRate != 7 {
			t.Errorf("spin_rate = %v, want 7", cfg.Animation.SpinRate)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}
}
