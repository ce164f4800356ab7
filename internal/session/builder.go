package session

import (
	"context"
	"fmt"
	"sync"
)

var (
	activeMu sync.Mutex
	active   *Engine
)

// Builder accumulates session settings. The zero value is not usable;
// call NewBuilder.
type Builder struct {
	settings Settings
}

// NewBuilder returns a builder for an in-memory session.
func NewBuilder() *Builder {
	return &Builder{settings: Settings{Database: DefaultDatabase}}
}

// FromSettings returns a builder preloaded with s.
func FromSettings(s Settings) *Builder {
	return &Builder{settings: cloneSettings(s)}
}

// Database sets the main database DSN.
func (b *Builder) Database(dsn string) *Builder {
	b.settings.Database = dsn
	return b
}

// Catalog registers a catalog to attach under name.
func (b *Builder) Catalog(name, path string) *Builder {
	if b.settings.Catalogs == nil {
		b.settings.Catalogs = make(map[string]string)
	}
	b.settings.Catalogs[name] = path
	return b
}

// EnableCatalogs turns on catalog support.
func (b *Builder) EnableCatalogs() *Builder {
	b.settings.EnableCatalogs = true
	return b
}

// QualifiedColumns reports un-aliased columns as table.column.
func (b *Builder) QualifiedColumns(on bool) *Builder {
	b.settings.QualifiedColumns = on
	return b
}

// Settings returns a copy of the accumulated settings.
func (b *Builder) Settings() Settings {
	return cloneSettings(b.settings)
}

// GetOrCreate returns the active session if it was opened with the same
// settings, otherwise it closes the active session and opens a new one.
func (b *Builder) GetOrCreate(ctx context.Context) (Session, error) {
	activeMu.Lock()
	defer activeMu.Unlock()

	if active != nil && active.settings.equal(b.settings) {
		return active, nil
	}

	if active != nil {
		prev := active
		active = nil
		if err := prev.db.Close(); err != nil {
			return nil, fmt.Errorf("close previous session: %w", err)
		}
	}

	e, err := Open(ctx, b.settings)
	if err != nil {
		return nil, err
	}
	active = e
	return e, nil
}

// Stop closes the active session, if any.
func Stop() error {
	activeMu.Lock()
	prev := active
	active = nil
	activeMu.Unlock()

	if prev == nil {
		return nil
	}
	return prev.db.Close()
}
