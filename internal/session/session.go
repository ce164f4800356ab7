package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"os"
	"regexp"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/sqlmean/internal/frame"
)

// DefaultDatabase is used when no database is configured.
const DefaultDatabase = ":memory:"

var (
	// ErrCatalogsDisabled is returned when catalogs are configured on a
	// session without catalog support.
	ErrCatalogsDisabled = errors.New("catalog support is not enabled")

	// ErrInvalidCatalog is returned for catalog names that cannot be attached.
	ErrInvalidCatalog = errors.New("invalid catalog name")

	// ErrCatalogNotFound is returned when a catalog file does not exist.
	ErrCatalogNotFound = errors.New("catalog not found")
)

var catalogName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Session executes SQL and returns fully materialized results.
type Session interface {
	Query(ctx context.Context, sql string) (*frame.Frame, error)
	Close() error
}

// Provider hands out a ready session.
type Provider interface {
	GetOrCreate(ctx context.Context) (Session, error)
}

// Settings configure an engine session.
type Settings struct {
	Database         string
	Catalogs         map[string]string // catalog name -> database file
	EnableCatalogs   bool
	QualifiedColumns bool
}

func (s Settings) equal(o Settings) bool {
	return databaseOrDefault(s.Database) == databaseOrDefault(o.Database) &&
		s.EnableCatalogs == o.EnableCatalogs &&
		s.QualifiedColumns == o.QualifiedColumns &&
		maps.Equal(s.Catalogs, o.Catalogs)
}

// Validate checks catalog configuration before anything is opened.
func (s Settings) Validate() error {
	if len(s.Catalogs) > 0 && !s.EnableCatalogs {
		return ErrCatalogsDisabled
	}
	for name := range s.Catalogs {
		if err := validateCatalogName(name); err != nil {
			return err
		}
	}
	return nil
}

func validateCatalogName(name string) error {
	if !catalogName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidCatalog, name)
	}
	switch strings.ToLower(name) {
	case "main", "temp":
		return fmt.Errorf("%w: %q is reserved", ErrInvalidCatalog, name)
	}
	return nil
}

// Engine is a SQLite-backed session.
type Engine struct {
	db       *sql.DB
	settings Settings
}

// Open creates a session for the given settings. Pragmas are applied and
// catalogs attached before it is returned.
func Open(ctx context.Context, settings Settings) (*Engine, error) {
	settings.Database = databaseOrDefault(settings.Database)
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", settings.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Attachments, pragmas and :memory: contents live on the connection,
	// so the pool is pinned to exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applyPragmas(ctx, db, settings); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := attachCatalogs(ctx, db, settings.Catalogs); err != nil {
		db.Close()
		return nil, err
	}

	return &Engine{db: db, settings: cloneSettings(settings)}, nil
}

// Query executes sqlText and drains the full result into a Frame.
func (e *Engine) Query(ctx context.Context, sqlText string) (*frame.Frame, error) {
	rows, err := e.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	f, err := frame.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("materialize result: %w", err)
	}
	return f, nil
}

// Exec runs a statement that returns no rows, such as DDL used to seed data.
func (e *Engine) Exec(ctx context.Context, sqlText string) error {
	if _, err := e.db.ExecContext(ctx, sqlText); err != nil {
		return fmt.Errorf("execute statement: %w", err)
	}
	return nil
}

// Settings returns the settings the session was opened with.
func (e *Engine) Settings() Settings {
	return cloneSettings(e.settings)
}

// Close releases the session. Closing the active session clears it.
func (e *Engine) Close() error {
	activeMu.Lock()
	if active == e {
		active = nil
	}
	activeMu.Unlock()

	return e.db.Close()
}

// applyPragmas sets per-connection SQLite configuration.
func applyPragmas(ctx context.Context, db *sql.DB, settings Settings) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	if settings.QualifiedColumns {
		pragmas = append(pragmas, "PRAGMA full_column_names = ON")
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// attachCatalogs attaches every catalog in name order.
func attachCatalogs(ctx context.Context, db *sql.DB, catalogs map[string]string) error {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := catalogs[name]
		if path != DefaultDatabase {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("%w: %s (%s): %v", ErrCatalogNotFound, name, path, err)
			}
		}
		// The name is validated as a plain identifier, so quoting is enough.
		stmt := fmt.Sprintf(`ATTACH DATABASE ? AS "%s"`, name)
		if _, err := db.ExecContext(ctx, stmt, path); err != nil {
			return fmt.Errorf("attach catalog %s: %w", name, err)
		}
	}
	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (e *Engine) verifyPragma(name, expected string) error {
	var value string
	if err := e.db.QueryRow(fmt.Sprintf("PRAGMA %s", name)).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}

func databaseOrDefault(dsn string) string {
	if dsn == "" {
		return DefaultDatabase
	}
	return dsn
}

func cloneSettings(s Settings) Settings {
	s.Catalogs = maps.Clone(s.Catalogs)
	return s
}
