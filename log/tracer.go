package log

import (
	"fmt"
	"io"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// Tracer echoes trace entries to out, whatever the logger's own output is.
type Tracer struct {
	out io.Writer
}

func NewTracer(out io.Writer) *Tracer {
	return &Tracer{out: out}
}

// AddFileHooks writes each level to its own file next to path.
func AddFileHooks(logger *log.Logger, path string) {
	pathMap := lfshook.PathMap{
		log.TraceLevel: path + ".trace",
		log.DebugLevel: path + ".debug",
		log.InfoLevel:  path + ".info",
		log.WarnLevel:  path + ".warn",
		log.ErrorLevel: path + ".error",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	logger.AddHook(hook)
}

func (tr *Tracer) Levels() []log.Level {
	return []log.Level{log.TraceLevel}
}

func (tr *Tracer) Fire(event *log.Entry) error {
	name, ok := event.Data["name"]
	if !ok {
		_, err := fmt.Fprintln(tr.out, event.Message)
		return err
	}
	_, err := fmt.Fprintf(tr.out, "[%v] %s\n", name, event.Message)
	return err
}
