// Package logging builds the process logger
// The terminal belongs to the UI, so records only go to a debug file and/or the systemd journal
package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// MaxLogSize is the size at which an existing log file is rotated on startup
const MaxLogSize = 10 * 1024 * 1024

// Options selects the enabled sinks
type Options struct {
	Debug   bool   // Write a text log file under Dir
	Journal bool   // Send records to the systemd journal
	Dir     string // Log directory for Debug
	File    string // Log file name inside Dir
	Level   slog.Level
}

// Setup builds a logger fanning out to every enabled sink
// The returned close function releases the log file; it is never nil
// The standard library logger is redirected to the same file or discarded
func Setup(opts Options) (*slog.Logger, func() error, error) {
	closeFn := func() error { return nil }
	var handlers []slog.Handler

	var file *os.File
	if opts.Debug {
		f, err := openLogFile(opts.Dir, opts.File)
		if err != nil {
			return nil, closeFn, err
		}
		file = f
		closeFn = f.Close
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: opts.Level}))
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if opts.Journal {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: toJournalKey,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			// Journal is best effort; report through whatever sinks remain
			if len(handlers) > 0 {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "systemd journal unavailable", 0)
				record.AddAttrs(slog.String("error", err.Error()))
				_ = handlers[0].Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journal)
		}
	}

	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler), closeFn, nil
	}

	logger := slog.New(slogmulti.Fanout(handlers...))
	if file != nil {
		logger.Debug("logging started", "path", file.Name())
	}
	return logger, closeFn, nil
}

// openLogFile creates dir, rotates an oversized previous log and opens name for appending
func openLogFile(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		ext := filepath.Ext(name)
		rotated := filepath.Join(dir, strings.TrimSuffix(name, ext)+"-"+time.Now().Format("20060102-150405")+ext)
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

// toJournalKey maps attribute keys onto the journal field alphabet [A-Z0-9_]
func toJournalKey(key string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(key) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return strings.TrimLeft(b.String(), "_")
}
