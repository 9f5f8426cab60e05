package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

// ScenarioFileName is the scenario file written into the working directory.
const ScenarioFileName = "scenario.yaml"

// Runner writes a scenario into a working directory and runs the external
// solver binary on it. The solver leaves its output volumes in the same
// directory.
type Runner struct {
	SolverPath string
	Workdir    string
}

// Run executes the solver on s under ctx; cancelling the context kills the
// process. The combined solver output is returned for the caller's logs.
func (r *Runner) Run(ctx context.Context, s *Scenario) (string, error) {
	if r.SolverPath == "" {
		return "", errors.New("engine: no solver binary configured")
	}
	if err := os.MkdirAll(r.Workdir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create working directory: %w", err)
	}

	data, err := s.Marshal()
	if err != nil {
		return "", fmt.Errorf("failed to marshal scenario: %w", err)
	}
	path := filepath.Join(r.Workdir, ScenarioFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write scenario file: %w", err)
	}

	cmd := exec.CommandContext(ctx, r.SolverPath, ScenarioFileName)
	cmd.Dir = r.Workdir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	log.WithFields(log.Fields{
		"solver":  r.SolverPath,
		"workdir": r.Workdir,
	}).Info("starting solver")

	start := time.Now()
	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("engine: solver failed: %w", err)
	}
	log.WithField("time", time.Since(start)).Info("solver finished")
	return out.String(), nil
}
