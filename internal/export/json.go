package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/snappy"

	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
	"github.com/Xiphoseer/paradox-typed-db/pkg/typed"
)

// exportTableJSON writes one table as a JSON array of row objects into
// stageDir and returns its stats and the staged file path. Compressed dumps
// carry a .sz suffix.
func exportTableJSON(t *fdb.Table, stageDir string, compress bool) (TableStats, string, error) {
	data, err := typed.MarshalTableRows(t)
	if err != nil {
		return TableStats{}, "", fmt.Errorf("export: marshal table %s: %w", t.Name(), err)
	}

	name := t.Name() + ".json"
	if compress {
		data = snappy.Encode(nil, data)
		name += ".sz"
	}

	file := filepath.Join(stageDir, name)
	if err := os.WriteFile(file, data, 0644); err != nil {
		return TableStats{}, "", fmt.Errorf("export: write %s: %w", file, err)
	}

	return TableStats{
		Name:            t.Name(),
		Rows:            t.RowCount(),
		DistinctStrings: countDistinctStrings(t),
		JSONBytes:       len(data),
	}, file, nil
}

// countDistinctStrings hashes every text field of the table into a set and
// returns the number of distinct values.
func countDistinctStrings(t *fdb.Table) int {
	set := newStringSet()
	it := t.RowIter()
	for it.Next() {
		row := it.Row()
		for _, v := range row.Fields() {
			if text, ok := v.AsText(); ok {
				set.add(text)
			}
		}
	}
	return set.size()
}
