package logger

import (
	"bytes"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultFieldSeparator  = " | "
	defaultTimestampFormat = time.RFC3339
)

// LevelNameDisplayMode defines how log level names are displayed.
type LevelNameDisplayMode int

const (
	// ShowAll shows all level names.
	ShowAll LevelNameDisplayMode = iota
	// ShowAboveWarn shows level names for WARN, ERROR, FATAL, PANIC.
	ShowAboveWarn
	// HideAll hides all level names.
	HideAll
)

// Formatter implements logrus.Formatter with ordered field display.
type Formatter struct {
	// TimestampFormat specifies the format of the timestamp. Default: time.RFC3339.
	TimestampFormat string
	// NoColors disables colorized output.
	NoColors bool
	// DisableTimestamp disables timestamp output.
	DisableTimestamp bool
	// DisplayLevelName configures which log level names are displayed.
	DisplayLevelName LevelNameDisplayMode
	// FieldsDisplayWithOrder lists field keys to display first, in that order.
	// Remaining fields are appended alphabetically.
	FieldsDisplayWithOrder []string
	// FieldSeparator separates fields in the output. Default: " | ".
	FieldSeparator string
	// DisableCaller disables caller information output.
	DisableCaller bool
	// CustomCallerFormatter overrides the default caller rendering.
	CustomCallerFormatter func(*runtime.Frame) string
}

// Format renders one log entry.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}

	if !f.DisableTimestamp {
		format := f.TimestampFormat
		if format == "" {
			format = defaultTimestampFormat
		}
		b.WriteString(entry.Time.Format(format))
		b.WriteString(" ")
	}

	showLevel := false
	switch f.DisplayLevelName {
	case ShowAll:
		showLevel = true
	case ShowAboveWarn:
		showLevel = entry.Level <= logrus.WarnLevel
	case HideAll:
		showLevel = false
	}

	if showLevel {
		levelStr := strings.ToUpper(entry.Level.String())
		if len(levelStr) > 4 {
			levelStr = levelStr[:4]
		}
		if f.NoColors {
			fmt.Fprintf(b, "[%s] ", levelStr)
		} else {
			fmt.Fprintf(b, "\x1b[%dm[%s]\x1b[0m ", colorByLevel(entry.Level), levelStr)
		}
	}

	f.writeFields(b, entry)

	b.WriteString(entry.Message)

	if !f.DisableCaller && entry.HasCaller() {
		if f.CustomCallerFormatter != nil {
			b.WriteString(f.CustomCallerFormatter(entry.Caller))
		} else {
			fmt.Fprintf(b, " (%s:%d)", filepath.Base(entry.Caller.File), entry.Caller.Line)
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (f *Formatter) writeFields(b *bytes.Buffer, entry *logrus.Entry) {
	if len(entry.Data) == 0 {
		return
	}

	separator := f.FieldSeparator
	if separator == "" {
		separator = defaultFieldSeparator
	}

	written := make(map[string]bool, len(entry.Data))
	for _, key := range f.FieldsDisplayWithOrder {
		if value, ok := entry.Data[key]; ok {
			fmt.Fprintf(b, "[%s:%v]", key, value)
			written[key] = true
		}
	}

	rest := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		if !written[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		fmt.Fprintf(b, "[%s:%v]", key, entry.Data[key])
	}

	b.WriteString(separator)
}

func colorByLevel(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return 37 // gray
	case logrus.WarnLevel:
		return 33 // yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return 31 // red
	default:
		return 36 // cyan
	}
}
