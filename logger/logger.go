package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"

	"github.com/runforge/runforge/common"
)

// Log wraps a logrus.Logger with application-specific scoped helpers.
// Instances are constructed once per run and passed explicitly; there is
// no package-level logger.
type Log struct {
	*logrus.Logger
}

// New creates a Log. When outputPath is non-empty, entries are written to a
// daily-rotated file under that directory (with a stable symlink) and the
// default output is discarded; otherwise entries go to stdout with colors.
func New(outputPath string, verbose bool) (*Log, error) {
	l := logrus.New()

	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	l.SetLevel(level)

	displayLevel := ShowAboveWarn
	if verbose {
		displayLevel = ShowAll
	}

	fieldsOrder := []string{
		common.LogFieldApp, common.LogFieldPipeline, common.LogFieldStep, common.LogFieldProbe,
	}

	if outputPath != "" {
		if err := os.MkdirAll(outputPath, common.FileMode0755); err != nil {
			return nil, fmt.Errorf("failed to create log output directory %s: %w", outputPath, err)
		}
		logFilePath := filepath.Join(outputPath, common.AppName+".log")

		writer, err := rotatelogs.New(
			logFilePath+".%Y%m%d", // Daily rotation
			rotatelogs.WithLinkName(logFilePath),
			rotatelogs.WithMaxAge(7*24*time.Hour),
			rotatelogs.WithRotationTime(24*time.Hour),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize rotatelogs for %s: %w", logFilePath, err)
		}

		l.SetReportCaller(true)
		fileFormatter := &Formatter{
			TimestampFormat:        "2006-01-02 15:04:05.000 MST",
			NoColors:               true,
			DisplayLevelName:       displayLevel,
			FieldsDisplayWithOrder: fieldsOrder,
			FieldSeparator:         " | ",
			CustomCallerFormatter: func(frame *runtime.Frame) string {
				return fmt.Sprintf(" [%s:%d %s]", filepath.Base(frame.File), frame.Line, filepath.Base(frame.Function))
			},
		}
		l.SetFormatter(fileFormatter)

		logWriters := lfshook.WriterMap{}
		for _, lvl := range logrus.AllLevels {
			if l.IsLevelEnabled(lvl) {
				logWriters[lvl] = writer
			}
		}
		l.Hooks.Add(lfshook.NewHook(logWriters, fileFormatter))
		// File logging goes through the hook; drop the default stream so
		// entries are not written twice.
		l.SetOutput(io.Discard)
	} else {
		l.SetFormatter(&Formatter{
			TimestampFormat:        "15:04:05",
			NoColors:               false,
			DisplayLevelName:       displayLevel,
			DisableCaller:          true,
			FieldsDisplayWithOrder: fieldsOrder,
		})
		l.SetOutput(os.Stdout)
	}

	return &Log{Logger: l}, nil
}

// ForPipeline returns an entry scoped with the pipeline name field.
func (l *Log) ForPipeline(pipelineName string) *logrus.Entry {
	return l.WithField(common.LogFieldPipeline, pipelineName)
}

// ForStep returns an entry scoped with the step identifier field.
func (l *Log) ForStep(stepID string) *logrus.Entry {
	return l.WithField(common.LogFieldStep, stepID)
}

// ForProbe returns an entry scoped with the probe name field.
func (l *Log) ForProbe(probeName string) *logrus.Entry {
	return l.WithField(common.LogFieldProbe, probeName)
}
