package tables

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kuruyia/pokeplat-tools/internal/plat/areamapprops"
)

// AreaMapPropsTable projects the area_build.narc archive into the
// area_map_prop table.
type AreaMapPropsTable struct {
	Records []areamapprops.AreaMapProps
}

func (t AreaMapPropsTable) CreateSQLTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE area_map_prop (
		id          INTEGER NOT NULL,
		map_prop_id INTEGER NOT NULL,
		PRIMARY KEY (id, map_prop_id)
	)`)
	if err != nil {
		return fmt.Errorf("create area_map_prop table: %w", err)
	}
	return nil
}

func (t AreaMapPropsTable) PopulateSQLTables(ctx context.Context, db *sql.DB) error {
	stmt, err := db.PrepareContext(ctx, `INSERT INTO area_map_prop (id, map_prop_id) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare area_map_prop insert: %w", err)
	}
	defer stmt.Close()

	for id, rec := range t.Records {
		for _, mapPropID := range rec.MapPropsIDs {
			if _, err := stmt.ExecContext(ctx, id, mapPropID); err != nil {
				return fmt.Errorf("insert area_map_prop row (%d, %d): %w", id, mapPropID, err)
			}
		}
	}
	return nil
}
