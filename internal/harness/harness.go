package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/roach88/sqlmean/internal/ctxlog"
	"github.com/roach88/sqlmean/internal/output"
	"github.com/roach88/sqlmean/internal/runner"
	"github.com/roach88/sqlmean/internal/session"
	"github.com/roach88/sqlmean/internal/testutil"
)

// engineProvider hands the runner one pre-seeded engine.
type engineProvider struct {
	engine *session.Engine
}

func (p engineProvider) GetOrCreate(context.Context) (session.Session, error) {
	return p.engine, nil
}

// Run executes a scenario in an isolated temporary directory against a
// fresh in-memory session and evaluates its expectations.
//
// The returned error covers harness failures only (setup statements,
// filesystem). A failing run is reported through Result.Error and checked
// against the scenario's expectations.
func Run(scenario *Scenario) (*Result, error) {
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	wd, err := testutil.NewWorkDir("sqlmean-scenario-*")
	if err != nil {
		return nil, err
	}
	defer wd.Close()
	path := wd.Path(output.DefaultPath)

	eng, err := session.Open(ctx, session.Settings{QualifiedColumns: scenario.QualifiedColumns})
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	defer eng.Close()

	for i, stmt := range scenario.Setup {
		if err := eng.Exec(ctx, stmt); err != nil {
			return nil, fmt.Errorf("setup[%d]: %w", i, err)
		}
	}

	if scenario.Existing != nil {
		if err := os.WriteFile(path, []byte(*scenario.Existing), 0o644); err != nil {
			return nil, fmt.Errorf("write existing output: %w", err)
		}
	}

	r := runner.New(engineProvider{engine: eng}, runner.Options{
		Prefix: scenario.Prefix,
		Output: path,
		IDs:    testutil.NewFixedRunID("scenario-" + scenario.Name),
	})
	res, runErr := r.Run(ctx, runner.Request{SQL: scenario.SQL, Field: scenario.Field})

	result := NewResult(scenario.Name)
	result.Column = res.Column
	result.Rows = res.Rows
	result.Count = res.Count
	if runErr != nil {
		result.Error = runErr.Error()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		result.Exists = true
		result.Output = string(data)
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read output: %w", err)
	}

	EvaluateExpectations(scenario, result)
	return result, nil
}
