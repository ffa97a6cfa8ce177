package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xiphoseer/paradox-typed-db/internal/storage"
	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

func testStore(t *testing.T) *fdb.Store {
	t.Helper()
	builder := fdb.NewBuilder()
	builder.Table("Icons", 4,
		fdb.Column{Name: "IconID", Type: fdb.TypeInteger},
		fdb.Column{Name: "IconPath", Type: fdb.TypeText},
	).
		Row(fdb.Int(1), fdb.TextString("textures/ui/anvil.png")).
		Row(fdb.Int(2), fdb.TextString("textures/ui/anvil.png")).
		Row(fdb.Int(3), fdb.Null())
	builder.Table("ItemSets", 2,
		fdb.Column{Name: "setID", Type: fdb.TypeInteger},
		fdb.Column{Name: "kitType", Type: fdb.TypeInteger},
	).
		Row(fdb.Int(50), fdb.Int(2))
	store, err := builder.Build()
	require.NoError(t, err)
	return store
}

func TestRunWritesJSONDumps(t *testing.T) {
	outDir := t.TempDir()
	exp := New(testStore(t), Options{OutDir: outDir})

	stats, err := exp.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.Tables, 2)

	// Tables come back in name order.
	assert.Equal(t, "Icons", stats.Tables[0].Name)
	assert.Equal(t, 3, stats.Tables[0].Rows)
	assert.Equal(t, 1, stats.Tables[0].DistinctStrings, "shared path counts once")
	assert.Equal(t, "ItemSets", stats.Tables[1].Name)

	data, err := os.ReadFile(filepath.Join(outDir, "Icons.json"))
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 3)

	// No staging residue.
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRunCompressesJSON(t *testing.T) {
	outDir := t.TempDir()
	exp := New(testStore(t), Options{OutDir: outDir, CompressJSON: true, Tables: []string{"ItemSets"}})

	stats, err := exp.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.Tables, 1)

	compressed, err := os.ReadFile(filepath.Join(outDir, "ItemSets.json.sz"))
	require.NoError(t, err)
	assert.Equal(t, len(compressed), stats.Tables[0].JSONBytes)

	data, err := snappy.Decode(nil, compressed)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"setID":50,"kitType":2}]`, string(data))
}

func TestRunUnknownTable(t *testing.T) {
	exp := New(testStore(t), Options{OutDir: t.TempDir(), Tables: []string{"Nope"}})

	_, err := exp.Run(context.Background())
	assert.ErrorContains(t, err, `unknown table "Nope"`)
}

func TestRunSQLiteExport(t *testing.T) {
	outDir := t.TempDir()
	sqlitePath := filepath.Join(outDir, "cdclient.sqlite")
	exp := New(testStore(t), Options{OutDir: outDir, SQLitePath: sqlitePath})

	stats, err := exp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sqlitePath, stats.SQLitePath)

	db, err := sql.Open("sqlite3", sqlitePath)
	require.NoError(t, err)
	defer db.Close()

	var path string
	err = db.QueryRow(`SELECT "IconPath" FROM "Icons" WHERE "IconID" = 1`).Scan(&path)
	require.NoError(t, err)
	assert.Equal(t, "textures/ui/anvil.png", path)

	var nullPath sql.NullString
	err = db.QueryRow(`SELECT "IconPath" FROM "Icons" WHERE "IconID" = 3`).Scan(&nullPath)
	require.NoError(t, err)
	assert.False(t, nullPath.Valid, "absent fields store as NULL")

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "ItemSets"`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestRunPublishesToStorage(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	outDir := t.TempDir()
	exp := New(testStore(t), Options{
		OutDir:  outDir,
		Tables:  []string{"Icons"},
		Storage: store,
		Prefix:  "export/v1",
	})

	_, err = exp.Run(context.Background())
	require.NoError(t, err)

	exists, err := store.Exists(context.Background(), "export/v1/Icons.json")
	require.NoError(t, err)
	assert.True(t, exists)
}
