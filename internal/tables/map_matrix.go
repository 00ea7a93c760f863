package tables

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kuruyia/pokeplat-tools/internal/plat/mapmatrix"
)

// MapMatrixTable projects the map_matrix.narc archive into map_matrix and
// its three per-cell tables: header ids and altitudes, each filled only when
// that section is present, and land data ids, always filled.
type MapMatrixTable struct {
	Records []mapmatrix.MapMatrix
}

func (t MapMatrixTable) CreateSQLTables(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE map_matrix (
			id                  INTEGER NOT NULL PRIMARY KEY,
			height              INTEGER NOT NULL,
			width               INTEGER NOT NULL,
			model_name_prefix   TEXT NOT NULL
		)`,
		`CREATE TABLE map_matrix_header_id (
			map_matrix_id   INTEGER NOT NULL,
			x               INTEGER NOT NULL,
			y               INTEGER NOT NULL,
			map_header_id   INTEGER NOT NULL,
			PRIMARY KEY (map_matrix_id, x, y),
			FOREIGN KEY (map_matrix_id) REFERENCES map_matrix(id)
		)`,
		`CREATE TABLE map_matrix_altitude (
			map_matrix_id   INTEGER NOT NULL,
			x               INTEGER NOT NULL,
			y               INTEGER NOT NULL,
			altitude        INTEGER NOT NULL,
			PRIMARY KEY (map_matrix_id, x, y),
			FOREIGN KEY (map_matrix_id) REFERENCES map_matrix(id)
		)`,
		`CREATE TABLE map_matrix_land_data_id (
			map_matrix_id   INTEGER NOT NULL,
			x               INTEGER NOT NULL,
			y               INTEGER NOT NULL,
			land_data_id    INTEGER NOT NULL,
			PRIMARY KEY (map_matrix_id, x, y),
			FOREIGN KEY (map_matrix_id) REFERENCES map_matrix(id)
		)`,
	}

	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("create map_matrix schema: %w", err)
		}
	}
	return nil
}

func (t MapMatrixTable) PopulateSQLTables(ctx context.Context, db *sql.DB) error {
	matrixStmt, err := db.PrepareContext(ctx, `INSERT INTO map_matrix (id, height, width, model_name_prefix) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare map_matrix insert: %w", err)
	}
	defer matrixStmt.Close()

	headerStmt, err := db.PrepareContext(ctx, `INSERT INTO map_matrix_header_id (map_matrix_id, x, y, map_header_id) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare map_matrix_header_id insert: %w", err)
	}
	defer headerStmt.Close()

	altitudeStmt, err := db.PrepareContext(ctx, `INSERT INTO map_matrix_altitude (map_matrix_id, x, y, altitude) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare map_matrix_altitude insert: %w", err)
	}
	defer altitudeStmt.Close()

	landDataStmt, err := db.PrepareContext(ctx, `INSERT INTO map_matrix_land_data_id (map_matrix_id, x, y, land_data_id) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare map_matrix_land_data_id insert: %w", err)
	}
	defer landDataStmt.Close()

	for matrixID, mm := range t.Records {
		if _, err := matrixStmt.ExecContext(ctx, matrixID, mm.Height, mm.Width, mm.ModelNamePrefix); err != nil {
			return fmt.Errorf("insert map_matrix row %d: %w", matrixID, err)
		}

		if mm.MapHeaderIDs != nil {
			for mapIndex, headerID := range mm.MapHeaderIDs {
				x, y, err := mm.MapIndexToCoords(uint16(mapIndex))
				if err != nil {
					return fmt.Errorf("map_matrix %d header ids: %w", matrixID, err)
				}
				if _, err := headerStmt.ExecContext(ctx, matrixID, x, y, headerID); err != nil {
					return fmt.Errorf("insert map_matrix_header_id row: %w", err)
				}
			}
		}

		if mm.Altitudes != nil {
			for mapIndex, altitude := range mm.Altitudes {
				x, y, err := mm.MapIndexToCoords(uint16(mapIndex))
				if err != nil {
					return fmt.Errorf("map_matrix %d altitudes: %w", matrixID, err)
				}
				if _, err := altitudeStmt.ExecContext(ctx, matrixID, x, y, altitude); err != nil {
					return fmt.Errorf("insert map_matrix_altitude row: %w", err)
				}
			}
		}

		for mapIndex, landDataID := range mm.LandDataIDs {
			x, y, err := mm.MapIndexToCoords(uint16(mapIndex))
			if err != nil {
				return fmt.Errorf("map_matrix %d land data ids: %w", matrixID, err)
			}
			if _, err := landDataStmt.ExecContext(ctx, matrixID, x, y, landDataID); err != nil {
				return fmt.Errorf("insert map_matrix_land_data_id row: %w", err)
			}
		}
	}

	return nil
}
