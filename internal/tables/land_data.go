package tables

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kuruyia/pokeplat-tools/internal/plat/landdata"
)

// LandDataTable projects the land_data.narc archive into the terrain
// attribute, map prop instance and BDHC collision geometry tables. Unlike
// the other table groups, population for all records happens inside a
// single transaction, since a land data record's terrain/prop/BDHC rows are
// only meaningful together.
type LandDataTable struct {
	Records []landdata.LandData
}

func (t LandDataTable) CreateSQLTables(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE land_data_terrain_attributes (
			land_data_id    INTEGER NOT NULL,
			x               INTEGER NOT NULL,
			y               INTEGER NOT NULL,
			tile_behavior   INTEGER NOT NULL,
			has_collision   INTEGER NOT NULL,
			PRIMARY KEY (land_data_id, x, y)
		)`,
		`CREATE TABLE land_data_map_prop (
			idx             INTEGER NOT NULL,
			land_data_id    INTEGER NOT NULL,
			map_prop_id     INTEGER NOT NULL,
			pos_x           REAL NOT NULL,
			pos_y           REAL NOT NULL,
			pos_z           REAL NOT NULL,
			rotation_x      REAL NOT NULL,
			rotation_y      REAL NOT NULL,
			rotation_z      REAL NOT NULL,
			scale_x         REAL NOT NULL,
			scale_y         REAL NOT NULL,
			scale_z         REAL NOT NULL,
			dummy_1         INTEGER NOT NULL,
			dummy_2         INTEGER NOT NULL,
			PRIMARY KEY (idx, land_data_id)
		)`,
		`CREATE TABLE bdhc_point (
			idx             INTEGER NOT NULL,
			land_data_id    INTEGER NOT NULL,
			pos_x           REAL NOT NULL,
			pos_z           REAL NOT NULL,
			PRIMARY KEY (idx, land_data_id)
		)`,
		`CREATE TABLE bdhc_normal (
			idx             INTEGER NOT NULL,
			land_data_id    INTEGER NOT NULL,
			pos_x           REAL NOT NULL,
			pos_y           REAL NOT NULL,
			pos_z           REAL NOT NULL,
			PRIMARY KEY (idx, land_data_id)
		)`,
		`CREATE TABLE bdhc_constant (
			idx             INTEGER NOT NULL,
			land_data_id    INTEGER NOT NULL,
			constant        REAL NOT NULL,
			PRIMARY KEY (idx, land_data_id)
		)`,
		`CREATE TABLE bdhc_plate (
			idx                 INTEGER NOT NULL,
			land_data_id        INTEGER NOT NULL,
			first_point_idx     INTEGER NOT NULL,
			second_point_idx    INTEGER NOT NULL,
			normal_idx          INTEGER NOT NULL,
			constant_idx        INTEGER NOT NULL,
			PRIMARY KEY (idx, land_data_id),
			FOREIGN KEY (first_point_idx, land_data_id) REFERENCES bdhc_point(idx, land_data_id),
			FOREIGN KEY (second_point_idx, land_data_id) REFERENCES bdhc_point(idx, land_data_id),
			FOREIGN KEY (normal_idx, land_data_id) REFERENCES bdhc_normal(idx, land_data_id),
			FOREIGN KEY (constant_idx, land_data_id) REFERENCES bdhc_constant(idx, land_data_id)
		)`,
		`CREATE TABLE bdhc_access_list (
			idx                         INTEGER NOT NULL,
			land_data_id                INTEGER NOT NULL,
			plate_idx                   INTEGER NOT NULL,
			PRIMARY KEY (idx, land_data_id),
			FOREIGN KEY (plate_idx, land_data_id) REFERENCES bdhc_plate(idx, land_data_id)
		)`,
		`CREATE TABLE bdhc_strip (
			idx                         INTEGER NOT NULL,
			land_data_id                INTEGER NOT NULL,
			scanline                    REAL NOT NULL,
			access_list_element_count   INTEGER NOT NULL,
			access_list_start_index     INTEGER NOT NULL,
			PRIMARY KEY (idx, land_data_id),
			FOREIGN KEY (access_list_start_index, land_data_id) REFERENCES bdhc_access_list(idx, land_data_id)
		)`,
	}

	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("create land_data schema: %w", err)
		}
	}
	return nil
}

func (t LandDataTable) PopulateSQLTables(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin land_data transaction: %w", err)
	}
	defer tx.Rollback()

	terrainStmt, err := tx.PrepareContext(ctx, `INSERT INTO land_data_terrain_attributes
		(land_data_id, x, y, tile_behavior, has_collision) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare land_data_terrain_attributes insert: %w", err)
	}
	defer terrainStmt.Close()

	propStmt, err := tx.PrepareContext(ctx, `INSERT INTO land_data_map_prop
		(idx, land_data_id, map_prop_id, pos_x, pos_y, pos_z, rotation_x, rotation_y, rotation_z, scale_x, scale_y, scale_z, dummy_1, dummy_2)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare land_data_map_prop insert: %w", err)
	}
	defer propStmt.Close()

	pointStmt, err := tx.PrepareContext(ctx, `INSERT INTO bdhc_point
		(idx, land_data_id, pos_x, pos_z) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare bdhc_point insert: %w", err)
	}
	defer pointStmt.Close()

	normalStmt, err := tx.PrepareContext(ctx, `INSERT INTO bdhc_normal
		(idx, land_data_id, pos_x, pos_y, pos_z) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare bdhc_normal insert: %w", err)
	}
	defer normalStmt.Close()

	constantStmt, err := tx.PrepareContext(ctx, `INSERT INTO bdhc_constant
		(idx, land_data_id, constant) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare bdhc_constant insert: %w", err)
	}
	defer constantStmt.Close()

	plateStmt, err := tx.PrepareContext(ctx, `INSERT INTO bdhc_plate
		(idx, land_data_id, first_point_idx, second_point_idx, normal_idx, constant_idx)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare bdhc_plate insert: %w", err)
	}
	defer plateStmt.Close()

	accessListStmt, err := tx.PrepareContext(ctx, `INSERT INTO bdhc_access_list
		(idx, land_data_id, plate_idx) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare bdhc_access_list insert: %w", err)
	}
	defer accessListStmt.Close()

	stripStmt, err := tx.PrepareContext(ctx, `INSERT INTO bdhc_strip
		(idx, land_data_id, scanline, access_list_element_count, access_list_start_index)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare bdhc_strip insert: %w", err)
	}
	defer stripStmt.Close()

	for landDataID, ld := range t.Records {
		for tileIndex, attrs := range ld.TerrainAttributes {
			x, y, err := landdata.TileIndexToCoords(uint32(tileIndex))
			if err != nil {
				return fmt.Errorf("land_data %d terrain attributes: %w", landDataID, err)
			}
			if _, err := terrainStmt.ExecContext(ctx, landDataID, x, y, attrs.TileBehavior, attrs.HasCollision); err != nil {
				return fmt.Errorf("insert land_data_terrain_attributes row: %w", err)
			}
		}

		for idx, mp := range ld.MapProps {
			if _, err := propStmt.ExecContext(ctx, idx, landDataID, mp.MapPropModelID,
				mp.Position.X.Float64(), mp.Position.Y.Float64(), mp.Position.Z.Float64(),
				mp.Rotation.X.Float64(), mp.Rotation.Y.Float64(), mp.Rotation.Z.Float64(),
				mp.Scale.X.Float64(), mp.Scale.Y.Float64(), mp.Scale.Z.Float64(),
				mp.Dummy[0], mp.Dummy[1]); err != nil {
				return fmt.Errorf("insert land_data_map_prop row: %w", err)
			}
		}

		for idx, p := range ld.Bdhc.Points {
			if _, err := pointStmt.ExecContext(ctx, idx, landDataID, p.X.Float64(), p.Z.Float64()); err != nil {
				return fmt.Errorf("insert bdhc_point row: %w", err)
			}
		}

		for idx, n := range ld.Bdhc.Normals {
			if _, err := normalStmt.ExecContext(ctx, idx, landDataID, n.X.Float64(), n.Y.Float64(), n.Z.Float64()); err != nil {
				return fmt.Errorf("insert bdhc_normal row: %w", err)
			}
		}

		for idx, c := range ld.Bdhc.Constants {
			if _, err := constantStmt.ExecContext(ctx, idx, landDataID, c.Float64()); err != nil {
				return fmt.Errorf("insert bdhc_constant row: %w", err)
			}
		}

		for idx, p := range ld.Bdhc.Plates {
			if _, err := plateStmt.ExecContext(ctx, idx, landDataID, p.FirstPointIndex, p.SecondPointIndex, p.NormalIndex, p.ConstantIndex); err != nil {
				return fmt.Errorf("insert bdhc_plate row: %w", err)
			}
		}

		for idx, plateIdx := range ld.Bdhc.AccessList {
			if _, err := accessListStmt.ExecContext(ctx, idx, landDataID, plateIdx); err != nil {
				return fmt.Errorf("insert bdhc_access_list row: %w", err)
			}
		}

		for idx, s := range ld.Bdhc.Strips {
			if _, err := stripStmt.ExecContext(ctx, idx, landDataID, s.Scanline.Float64(), s.AccessListElementCount, s.AccessListStartIndex); err != nil {
				return fmt.Errorf("insert bdhc_strip row: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit land_data transaction: %w", err)
	}
	return nil
}
