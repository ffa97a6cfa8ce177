// Package export converts an in-memory client database into offline
// artifacts: a SQLite database mirroring every table, and per-table JSON
// dumps, optionally snappy-compressed and published to object storage.
package export

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spaolacci/murmur3"

	"github.com/Xiphoseer/paradox-typed-db/internal/storage"
	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

// Options configures an export run.
type Options struct {
	// OutDir is the directory export artifacts are written to.
	OutDir string

	// SQLitePath is the path of the SQLite file. Empty disables the SQLite
	// export.
	SQLitePath string

	// CompressJSON enables snappy compression of the JSON dumps.
	CompressJSON bool

	// Tables restricts the export to the named tables. Empty exports all.
	Tables []string

	// Storage, when set, receives the finished artifacts under Prefix.
	Storage storage.ObjectStorage
	Prefix  string
}

// TableStats describes one exported table.
type TableStats struct {
	Name            string `json:"name"`
	Rows            int    `json:"rows"`
	DistinctStrings int    `json:"distinct_strings"`
	JSONBytes       int    `json:"json_bytes"`
}

// Stats describes a completed export run.
type Stats struct {
	Tables     []TableStats `json:"tables"`
	SQLitePath string       `json:"sqlite_path,omitempty"`
}

// Exporter runs exports against a loaded store.
type Exporter struct {
	store *fdb.Store
	opts  Options
}

// New creates an exporter for the given store.
func New(store *fdb.Store, opts Options) *Exporter {
	return &Exporter{store: store, opts: opts}
}

// Run exports the selected tables. Artifacts are staged in a scratch
// directory and moved into OutDir only when complete, so a failed run never
// leaves partial files at the final paths.
func (e *Exporter) Run(ctx context.Context) (*Stats, error) {
	tables, err := e.selectTables()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(e.opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("export: create out dir: %w", err)
	}
	stageDir := filepath.Join(e.opts.OutDir, ".stage-"+uuid.New().String())
	if err := os.MkdirAll(stageDir, 0755); err != nil {
		return nil, fmt.Errorf("export: create staging dir: %w", err)
	}
	defer os.RemoveAll(stageDir)

	type artifact struct {
		src, dest string
	}

	stats := &Stats{}
	var staged []artifact

	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ts, file, err := exportTableJSON(t, stageDir, e.opts.CompressJSON)
		if err != nil {
			return nil, err
		}
		stats.Tables = append(stats.Tables, ts)
		staged = append(staged, artifact{src: file, dest: filepath.Join(e.opts.OutDir, filepath.Base(file))})
	}

	if e.opts.SQLitePath != "" {
		sqliteStage := filepath.Join(stageDir, filepath.Base(e.opts.SQLitePath))
		if err := exportSQLite(ctx, tables, sqliteStage); err != nil {
			return nil, err
		}
		staged = append(staged, artifact{src: sqliteStage, dest: e.opts.SQLitePath})
		stats.SQLitePath = e.opts.SQLitePath
	}

	// Move staged artifacts into place.
	for _, a := range staged {
		if err := os.Rename(a.src, a.dest); err != nil {
			return nil, fmt.Errorf("export: finalize %s: %w", a.dest, err)
		}
		if e.opts.Storage != nil {
			key := path.Join(e.opts.Prefix, filepath.Base(a.dest))
			if err := e.opts.Storage.Upload(ctx, a.dest, key); err != nil {
				return nil, fmt.Errorf("export: publish %s: %w", key, err)
			}
		}
	}

	return stats, nil
}

// selectTables resolves the table filter against the store.
func (e *Exporter) selectTables() ([]*fdb.Table, error) {
	if len(e.opts.Tables) == 0 {
		return e.store.Tables(), nil
	}
	out := make([]*fdb.Table, 0, len(e.opts.Tables))
	for _, name := range e.opts.Tables {
		t, ok := e.store.TableByName(name)
		if !ok {
			return nil, fmt.Errorf("export: unknown table %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}

// stringSet counts distinct text values by their murmur3 128-bit hash, so
// large tables are summarized without retaining every string.
type stringSet struct {
	seen map[[2]uint64]struct{}
}

func newStringSet() *stringSet {
	return &stringSet{seen: make(map[[2]uint64]struct{})}
}

func (s *stringSet) add(text fdb.Latin1) {
	h1, h2 := murmur3.Sum128(text)
	s.seen[[2]uint64{h1, h2}] = struct{}{}
}

func (s *stringSet) size() int { return len(s.seen) }
