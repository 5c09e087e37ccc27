// Package logger builds the slog loggers used by the dialnav front-ends.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// EnvVarLogLevel is consulted when no level is given explicitly.
const EnvVarLogLevel = "DIALNAV_LOG_LEVEL"

type Options struct {
	// Writer receives text or JSON records. Nil means stderr.
	Writer io.Writer
	Level  string
	JSON   bool

	// Journal also sends records to the systemd journal when it is reachable.
	Journal bool
}

// level is shared by every logger built here, so SetLevel takes effect
// immediately everywhere.
var level = new(slog.LevelVar)

func SetLevel(l slog.Level) { level.Set(l) }

func New(opts Options) *slog.Logger {
	lvl := opts.Level
	if lvl == "" {
		lvl = os.Getenv(EnvVarLogLevel)
	}
	level.Set(ParseLevel(lvl))

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	hopts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level.Level() <= slog.LevelDebug,
	}

	var local slog.Handler
	if opts.JSON {
		local = slog.NewJSONHandler(w, hopts)
	} else {
		local = slog.NewTextHandler(w, hopts)
	}
	handlers := []slog.Handler{local}

	if opts.Journal {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: toJournalKey,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "systemd journal unavailable", 0)
			record.Add("error", err)
			_ = local.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journal)
		}
	}

	return slog.New(&leveled{Handler: slogmulti.Fanout(handlers...)})
}

// Discard is a logger for tests and headless runs.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// leveled gates every fanned-out handler on the shared level; the journal
// handler would otherwise apply its own default.
type leveled struct {
	slog.Handler
}

func (h *leveled) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= level.Level() && h.Handler.Enabled(ctx, l)
}

func (h *leveled) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &leveled{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *leveled) WithGroup(name string) slog.Handler {
	return &leveled{Handler: h.Handler.WithGroup(name)}
}

func toJournalKey(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(s))
}
