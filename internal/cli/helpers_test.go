package cli

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/sqlmean/internal/testutil"
)

// execute runs the CLI with args inside a fresh working directory and
// returns stdout, stderr and the command error.
func execute(t *testing.T, opts *RootOptions, args ...string) (string, string, error) {
	t.Helper()

	if opts.IDs == nil {
		opts.IDs = testutil.NewFixedRunID("run-fixed")
	}
	if opts.Getenv == nil {
		opts.Getenv = func(string) string { return "" }
	}

	cmd := newRootCommand(opts)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// inTempDir switches the working directory to a fresh temp dir.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
