package tables

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kuruyia/pokeplat-tools/internal/plat/areadata"
)

// AreaDataTable projects the area_data.narc archive into the area_data
// table, one row per member.
type AreaDataTable struct {
	Records []areadata.AreaData
}

func (t AreaDataTable) CreateSQLTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE area_data (
		id                  INTEGER NOT NULL PRIMARY KEY,
		area_map_prop_id    INTEGER NOT NULL,
		map_texture_id      INTEGER NOT NULL,
		area_light_id       INTEGER NOT NULL,
		dummy               INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create area_data table: %w", err)
	}
	return nil
}

func (t AreaDataTable) PopulateSQLTables(ctx context.Context, db *sql.DB) error {
	stmt, err := db.PrepareContext(ctx, `INSERT INTO area_data
		(id, area_map_prop_id, map_texture_id, area_light_id, dummy)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare area_data insert: %w", err)
	}
	defer stmt.Close()

	for id, rec := range t.Records {
		if _, err := stmt.ExecContext(ctx, id, rec.MapPropArchivesID, rec.MapTextureArchiveID, rec.AreaLightArchiveID, rec.Dummy); err != nil {
			return fmt.Errorf("insert area_data row %d: %w", id, err)
		}
	}
	return nil
}
