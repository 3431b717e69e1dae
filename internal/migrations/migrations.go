// Package migrations embeds the SQL schema for each supported store.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

type Migration struct {
	Name string
	SQL  string
}

// Load returns the migrations of a dialect in file name order
func Load(dialect string) ([]Migration, error) {
	if dialect != Postgres && dialect != SQLite {
		return nil, fmt.Errorf("unknown dialect %q", dialect)
	}

	entries, err := fs.ReadDir(files, dialect)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var res []Migration
	for _, e := range entries {
		b, err := files.ReadFile(path.Join(dialect, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		res = append(res, Migration{Name: e.Name(), SQL: string(b)})
	}
	return res, nil
}
