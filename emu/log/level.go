package log

import (
	"io"

	"gopkg.in/Sirupsen/logrus.v0"
)

// Level mirrors logrus levels, from the most to the least severe.
type Level uint32

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

func init() {
	// Filtering happens per module, logrus must let everything through.
	logrus.SetLevel(logrus.DebugLevel)
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// A Context adds fields to every log entry, whatever the module.
type Context interface {
	AddLogContext(entry *EntryZ)
}

var contexts []Context

// AddContext registers a log context.
func AddContext(ctx Context) {
	contexts = append(contexts, ctx)
}

// RemoveContext unregisters a previously added log context.
func RemoveContext(ctx Context) {
	for i, c := range contexts {
		if c == ctx {
			contexts = append(contexts[:i], contexts[i+1:]...)
			return
		}
	}
}

func addContexts(z *EntryZ) {
	for _, c := range contexts {
		c.AddLogContext(z)
	}
}
