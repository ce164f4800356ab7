package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/sqlmean/internal/frame"
	"github.com/roach88/sqlmean/internal/session"
)

// fakeSession records queries and returns a canned frame or error.
type fakeSession struct {
	frame   *frame.Frame
	err     error
	queries []string
}

func (s *fakeSession) Query(_ context.Context, sql string) (*frame.Frame, error) {
	s.queries = append(s.queries, sql)
	return s.frame, s.err
}

func (s *fakeSession) Close() error { return nil }

// fakeProvider hands out a single session, or fails.
type fakeProvider struct {
	sess  session.Session
	err   error
	calls int
}

func (p *fakeProvider) GetOrCreate(context.Context) (session.Session, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.sess, nil
}

// sqliteProvider opens an isolated in-memory engine for one test.
func sqliteProvider(t *testing.T) *fakeProvider {
	t.Helper()
	e, err := session.Open(context.Background(), session.Settings{})
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return &fakeProvider{sess: e}
}

func mustFrame(t *testing.T, columns []string, rows ...[]any) *frame.Frame {
	t.Helper()
	f, err := frame.New(columns, rows)
	require.NoError(t, err)
	return f
}

func outputPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "temp_file.txt")
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
