package policy

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherEmptyPathServesDefaults(t *testing.T) {
	w, err := NewWatcher("")
	if err != nil {
		t.Fatalf("NewWatcher(\"\") error: %v", err)
	}
	defer w.Close()

	p := w.Current()
	if len(p.HardKeywords) != len(DefaultHardKeywords) {
		t.Error("watcher without a path does not serve defaults")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	if err := os.WriteFile(path, []byte("hard_keywords:\n  - quantum\n"), 0644); err != nil {
		t.Fatalf("writing policy file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if kws := w.Current().HardKeywords; len(kws) != 1 || kws[0] != "quantum" {
		t.Fatalf("initial policy = %v, want [quantum]", kws)
	}

	if err := os.WriteFile(path, []byte("hard_keywords:\n  - blockchain\n"), 0644); err != nil {
		t.Fatalf("rewriting policy file: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if kws := w.Current().HardKeywords; len(kws) == 1 && kws[0] == "blockchain" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("policy not reloaded after write, still %v", w.Current().HardKeywords)
}
