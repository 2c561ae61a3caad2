package log

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

type Config struct {
	Level   string
	Logfile string
	Trace   bool
	Output  io.Writer
}

var base *log.Logger = newBase()

func newBase() *log.Logger {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})
	logger.SetOutput(os.Stderr)
	logger.SetLevel(log.ErrorLevel)
	return logger
}

// NewLogger returns an entry of the shared base logger tagged with module.
func NewLogger(module string) *Logger {
	baselogger := base.WithFields(
		log.Fields{
			"name": module,
		})
	return &Logger{baselogger}
}

// Configure applies cfg to every logger handed out by NewLogger.
func Configure(cfg Config) error {
	if cfg.Level != "" {
		level, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return err
		}
		base.SetLevel(level)
	}
	if cfg.Output != nil {
		base.SetOutput(cfg.Output)
	}
	base.ReplaceHooks(make(log.LevelHooks))
	if cfg.Logfile != "" {
		AddFileHooks(base, cfg.Logfile)
	}
	if cfg.Trace {
		base.AddHook(NewTracer(os.Stderr))
		if base.GetLevel() < log.TraceLevel {
			base.SetLevel(log.TraceLevel)
		}
	}
	return nil
}

func Base() *log.Logger {
	return base
}
