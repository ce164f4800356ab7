package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesPragmas(t *testing.T) {
	e := openTestEngine(t, Settings{})

	assert.NoError(t, e.verifyPragma("busy_timeout", "5000"))
	assert.NoError(t, e.verifyPragma("foreign_keys", "1"))
	assert.Equal(t, DefaultDatabase, e.Settings().Database)
}

func TestOpen_FileDatabase(t *testing.T) {
	path := createCatalogFile(t, "main",
		`CREATE TABLE participant (eid TEXT, age INTEGER)`,
		`INSERT INTO participant VALUES ('a', 40), ('b', 50)`,
	)
	e := openTestEngine(t, Settings{Database: path})

	f, err := e.Query(context.Background(), `SELECT age AS "participant.age" FROM participant`)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Len())
}

func TestQuery_MaterializesResult(t *testing.T) {
	e := openTestEngine(t, Settings{})

	f, err := e.Query(context.Background(),
		`SELECT 3 AS "participant.age" UNION ALL SELECT 5 AS "participant.age"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"participant.age"}, f.Columns())

	st, err := f.Mean("participant.age")
	require.NoError(t, err)
	assert.Equal(t, 4.0, st.Mean)
}

func TestQuery_InvalidSQL(t *testing.T) {
	e := openTestEngine(t, Settings{})

	_, err := e.Query(context.Background(), "SELEC 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execute query")

	_, err = e.Query(context.Background(), "SELECT * FROM missing_table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing_table")
}

func TestExec_SeedsInMemoryDatabase(t *testing.T) {
	e := openTestEngine(t, Settings{})
	ctx := context.Background()

	require.NoError(t, e.Exec(ctx, `CREATE TABLE participant (age REAL)`))
	require.NoError(t, e.Exec(ctx, `INSERT INTO participant VALUES (1.5), (NULL), (2.5)`))

	// The seeded table must be visible: the pool holds a single connection.
	f, err := e.Query(ctx, `SELECT age AS "participant.age" FROM participant`)
	require.NoError(t, err)
	st, err := f.Mean("participant.age")
	require.NoError(t, err)
	assert.Equal(t, 2, st.Count)
	assert.Equal(t, 2.0, st.Mean)
}

func TestQualifiedColumns(t *testing.T) {
	ctx := context.Background()

	plain := openTestEngine(t, Settings{})
	require.NoError(t, plain.Exec(ctx, `CREATE TABLE participant (age INTEGER)`))
	f, err := plain.Query(ctx, `SELECT age FROM participant`)
	require.NoError(t, err)
	assert.Equal(t, []string{"age"}, f.Columns())

	qualified := openTestEngine(t, Settings{QualifiedColumns: true})
	require.NoError(t, qualified.verifyPragma("full_column_names", "1"))
	require.NoError(t, qualified.Exec(ctx, `CREATE TABLE participant (age INTEGER)`))
	f, err = qualified.Query(ctx, `SELECT age FROM participant`)
	require.NoError(t, err)
	assert.Equal(t, []string{"participant.age"}, f.Columns())
}

func TestCatalogs_Attach(t *testing.T) {
	path := createCatalogFile(t, "ukb",
		`CREATE TABLE participant (age INTEGER)`,
		`INSERT INTO participant VALUES (20), (30), (NULL)`,
	)
	e := openTestEngine(t, Settings{
		EnableCatalogs: true,
		Catalogs:       map[string]string{"ukb": path},
	})

	f, err := e.Query(context.Background(), `SELECT age AS "participant.age" FROM ukb.participant`)
	require.NoError(t, err)
	st, err := f.Mean("participant.age")
	require.NoError(t, err)
	assert.Equal(t, 25.0, st.Mean)
}

func TestCatalogs_Errors(t *testing.T) {
	existing := createCatalogFile(t, "x", `CREATE TABLE t (v INTEGER)`)

	tests := []struct {
		name     string
		settings Settings
		want     error
	}{
		{
			name:     "disabled",
			settings: Settings{Catalogs: map[string]string{"ukb": existing}},
			want:     ErrCatalogsDisabled,
		},
		{
			name:     "bad identifier",
			settings: Settings{EnableCatalogs: true, Catalogs: map[string]string{"my-cat": existing}},
			want:     ErrInvalidCatalog,
		},
		{
			name:     "reserved main",
			settings: Settings{EnableCatalogs: true, Catalogs: map[string]string{"Main": existing}},
			want:     ErrInvalidCatalog,
		},
		{
			name:     "reserved temp",
			settings: Settings{EnableCatalogs: true, Catalogs: map[string]string{"temp": existing}},
			want:     ErrInvalidCatalog,
		},
		{
			name: "missing file",
			settings: Settings{EnableCatalogs: true, Catalogs: map[string]string{
				"ukb": filepath.Join(t.TempDir(), "nope.db"),
			}},
			want: ErrCatalogNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(context.Background(), tt.settings)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSettings_CloneIsIndependent(t *testing.T) {
	catalogs := map[string]string{"a": ":memory:"}
	e := openTestEngine(t, Settings{EnableCatalogs: true, Catalogs: catalogs})

	catalogs["b"] = ":memory:"
	assert.Len(t, e.Settings().Catalogs, 1)
}
