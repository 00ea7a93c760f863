// Package tables projects decoded asset records into relational SQL tables.
//
// Each file in this package adapts one group of decoded records into the
// PopulateSql capability: create the tables it owns, then populate them.
// This mirrors the teacher's manifest-building pattern (one unit of work per
// asset kind, run in a fixed pipeline order) applied to a relational sink
// instead of a pk3 archive.
package tables

import (
	"context"
	"database/sql"
	"fmt"
)

// PopulateSql is implemented by every table group: it knows how to create
// its own schema and insert its own rows.
type PopulateSql interface {
	CreateSQLTables(ctx context.Context, db *sql.DB) error
	PopulateSQLTables(ctx context.Context, db *sql.DB) error
}

// CreateAndPopulate runs CreateSQLTables then PopulateSQLTables for a table
// group, wrapping any failure with the group's name for diagnostics.
func CreateAndPopulate(ctx context.Context, db *sql.DB, name string, p PopulateSql) error {
	if err := p.CreateSQLTables(ctx, db); err != nil {
		return fmt.Errorf("create %s tables: %w", name, err)
	}
	if err := p.PopulateSQLTables(ctx, db); err != nil {
		return fmt.Errorf("populate %s tables: %w", name, err)
	}
	return nil
}
