package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// openTestEngine opens an in-memory engine closed at test end.
func openTestEngine(t *testing.T, settings Settings) *Engine {
	t.Helper()
	e, err := Open(context.Background(), settings)
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

// createCatalogFile writes a SQLite file holding the given statements.
func createCatalogFile(t *testing.T, name string, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name+".db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return path
}

// resetActive closes any process-wide session left by a previous test.
func resetActive(t *testing.T) {
	t.Helper()
	activeMu.Lock()
	prev := active
	active = nil
	activeMu.Unlock()
	if prev != nil {
		prev.db.Close()
	}
}
