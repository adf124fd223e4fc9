package logger

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runforge/runforge/common"
)

func newEntry(level logrus.Level, msg string, fields logrus.Fields) *logrus.Entry {
	entry := logrus.NewEntry(logrus.New()).WithFields(fields)
	entry.Level = level
	entry.Message = msg
	entry.Time = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return entry
}

func TestFormatter_OrderedFieldsComeFirst(t *testing.T) {
	f := &Formatter{
		NoColors:               true,
		DisableTimestamp:       true,
		DisableCaller:          true,
		DisplayLevelName:       HideAll,
		FieldsDisplayWithOrder: []string{common.LogFieldPipeline, common.LogFieldStep},
	}

	out, err := f.Format(newEntry(logrus.InfoLevel, "step started", logrus.Fields{
		"zebra":                 "last",
		common.LogFieldStep:     "2.1",
		common.LogFieldPipeline: "demo",
	}))
	require.NoError(t, err)

	s := string(out)
	assert.Less(t, strings.Index(s, "[Pipeline:demo]"), strings.Index(s, "[Step:2.1]"))
	assert.Less(t, strings.Index(s, "[Step:2.1]"), strings.Index(s, "[zebra:last]"))
	assert.True(t, strings.HasSuffix(s, "step started\n"))
}

func TestFormatter_LevelDisplayModes(t *testing.T) {
	entry := newEntry(logrus.InfoLevel, "hello", nil)

	f := &Formatter{NoColors: true, DisableTimestamp: true, DisableCaller: true, DisplayLevelName: ShowAll}
	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[INFO]")

	f.DisplayLevelName = ShowAboveWarn
	out, err = f.Format(entry)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "[INFO]")

	warn := newEntry(logrus.WarnLevel, "careful", nil)
	out, err = f.Format(warn)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[WARN]")
}

func TestFormatter_Timestamp(t *testing.T) {
	f := &Formatter{
		NoColors:         true,
		DisableCaller:    true,
		DisplayLevelName: HideAll,
		TimestampFormat:  "15:04:05",
	}
	out, err := f.Format(newEntry(logrus.InfoLevel, "tick", nil))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "12:00:00 "))
}

func TestNew_ConsoleLogger(t *testing.T) {
	log, err := New("", true)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_FileLogger(t *testing.T) {
	dir := t.TempDir()
	log, err := New(dir, false)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.ForPipeline("demo").Info("hello from the file logger")
}

func TestScopedEntries(t *testing.T) {
	log, err := New("", false)
	require.NoError(t, err)

	entry := log.ForStep("1.2")
	assert.Equal(t, "1.2", entry.Data[common.LogFieldStep])

	entry = log.ForProbe("system_info")
	assert.Equal(t, "system_info", entry.Data[common.LogFieldProbe])
}
