// Package session provides the query-engine session used to run SQL.
//
// The engine is SQLite (github.com/mattn/go-sqlite3) behind database/sql.
// Sessions are built Spark-style:
//
//	s, err := session.NewBuilder().
//		Database("warehouse.db").
//		Catalog("ukb", "/data/ukb.db").
//		EnableCatalogs().
//		GetOrCreate(ctx)
//
// GetOrCreate reuses the process-wide active session when its settings
// match, and otherwise replaces it.
//
// # Catalogs
//
// With catalog support enabled, every configured catalog is attached under
// its own name so queries can reference tables as catalog.table. Catalog
// files must already exist.
//
// # Connection Configuration
//
//   - One pooled connection: attachments and :memory: databases are
//     per-connection state
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
//   - full_column_names=ON when qualified columns are requested, so an
//     un-aliased column is reported as table.column
package session
