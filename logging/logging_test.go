package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupDisabledByDefault(t *testing.T) {
	logger, closeFn, err := Setup(Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()

	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("expected a discarding logger without sinks")
	}
	if log.Writer() != io.Discard {
		t.Errorf("expected standard log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupDebugWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, closeFn, err := Setup(Options{Debug: true, Dir: dir, File: "hanoi.log", Level: slog.LevelDebug})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("move", "step", 1, "disc", 0)
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
	log.SetOutput(io.Discard)

	content, err := os.ReadFile(filepath.Join(dir, "hanoi.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "msg=move step=1 disc=0") {
		t.Errorf("log file missing record:\n%s", content)
	}
	if log.Writer() == os.Stdout || log.Writer() == os.Stderr {
		t.Error("log output must never reach the terminal")
	}
}

func TestSetupRotatesLargeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hanoi.log")
	if err := os.WriteFile(path, make([]byte, MaxLogSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	_, closeFn, err := Setup(Options{Debug: true, Dir: dir, File: "hanoi.log"})
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	defer log.SetOutput(io.Discard)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != "hanoi.log" && strings.HasPrefix(e.Name(), "hanoi-") && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("expected a rotated log file")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > MaxLogSize {
		t.Errorf("new log file has %d bytes", info.Size())
	}
}

func TestSetupJournalIsBestEffort(t *testing.T) {
	// Succeeds whether or not a journal socket exists
	logger, closeFn, err := Setup(Options{Journal: true})
	if err != nil {
		t.Fatalf("journal sink must not fail setup: %v", err)
	}
	defer closeFn()
	logger.Info("probe")
}

func TestToJournalKey(t *testing.T) {
	tests := map[string]string{
		"step":        "STEP",
		"total_moves": "TOTAL_MOVES",
		"logs.span":   "LOGS_SPAN",
		"_private":    "PRIVATE",
		"disc-2":      "DISC_2",
	}
	for in, want := range tests {
		if got := toJournalKey(in); got != want {
			t.Errorf("toJournalKey(%q) = %q, want %q", in, got, want)
		}
	}
}
