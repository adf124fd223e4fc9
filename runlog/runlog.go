package runlog

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"github.com/runforge/runforge/common"
	"github.com/runforge/runforge/timeutil"
)

// RunLog is the manifest of one whole pipeline execution: timing,
// host and repository facts, resolved dependency versions, and one
// ActionLog per executed unit of work. It accumulates during the run and
// becomes read-only once finalized and written.
type RunLog struct {
	// RunID is a random identifier for cross-referencing log files.
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	// CompletedAt stays nil until Finalize.
	CompletedAt *time.Time `json:"completed_at"`

	RepositoryName  string `json:"repository_name"`
	PipelineName    string `json:"pipeline_name"`
	PipelineVersion string `json:"pipeline_version"`

	// SystemInfo is the environment snapshot, nil when collection failed.
	SystemInfo map[string]string `json:"system_info"`

	// Steps maps step identifier to action log in execution order.
	Steps *StepMap `json:"steps"`

	// Dependencies maps dependency-source name to its package->version
	// table; nil until Finalize.
	Dependencies map[string]map[string]string `json:"dependencies"`
}

// New creates a RunLog with the start timestamp stamped from clock and an
// empty step map.
func New(clock clockwork.Clock, repositoryName, pipelineName, pipelineVersion string, systemInfo map[string]string) *RunLog {
	return &RunLog{
		RunID:           uuid.NewString(),
		StartedAt:       clock.Now(),
		RepositoryName:  repositoryName,
		PipelineName:    pipelineName,
		PipelineVersion: pipelineVersion,
		SystemInfo:      systemInfo,
		Steps:           NewStepMap(),
	}
}

// Record inserts or overwrites the action log for the given identifier.
func (rl *RunLog) Record(id string, a *ActionLog) {
	rl.Steps.Set(id, a)
}

// Finalize stamps the completion timestamp, attaches the resolved
// dependency tables and writes the whole manifest as indented JSON to
// logDir. The filename embeds the SHA-256 of the completion timestamp, so
// calling Finalize twice produces two distinct files rather than an
// overwrite. It returns the path of the written file.
func (rl *RunLog) Finalize(clock clockwork.Clock, dependencies map[string]map[string]string, logDir string) (string, error) {
	now := clock.Now()
	rl.CompletedAt = &now
	rl.Dependencies = dependencies

	if err := os.MkdirAll(logDir, common.FileMode0755); err != nil {
		return "", errors.Wrapf(err, "failed to create log directory %s", logDir)
	}

	data, err := json.MarshalIndent(rl, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize run log")
	}

	digest := sha256.Sum256([]byte(now.Format(time.RFC3339Nano)))
	filename := fmt.Sprintf("%s-%x.json", rl.RepositoryName, digest)
	path := filepath.Join(logDir, filename)

	if err := os.WriteFile(path, data, common.FileMode0644); err != nil {
		return "", errors.Wrapf(err, "failed to write run log %s", path)
	}
	return path, nil
}

// Elapsed returns the display form of the run duration. It is only
// meaningful after Finalize.
func (rl *RunLog) Elapsed() string {
	if rl.CompletedAt == nil {
		return ""
	}
	return timeutil.Elapsed(rl.StartedAt, *rl.CompletedAt)
}
