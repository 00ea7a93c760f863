package tables

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kuruyia/pokeplat-tools/internal/nds"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/arealight"
)

// AreaLightTable projects the arealight.narc archive into area_light and its
// per-light and per-color-kind child tables.
type AreaLightTable struct {
	Records []arealight.AreaLight
}

func (t AreaLightTable) CreateSQLTables(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE area_light (
			id          INTEGER NOT NULL,
			end_time    INTEGER NOT NULL,
			PRIMARY KEY (id, end_time)
		)`,
		`CREATE TABLE area_light_properties (
			light_id            INTEGER NOT NULL,
			area_light_id       INTEGER NOT NULL,
			area_light_end_time INTEGER NOT NULL,
			red                 INTEGER NOT NULL,
			green               INTEGER NOT NULL,
			blue                INTEGER NOT NULL,
			dir_x               REAL NOT NULL,
			dir_y               REAL NOT NULL,
			dir_z               REAL NOT NULL,
			PRIMARY KEY (light_id, area_light_id, area_light_end_time),
			FOREIGN KEY (area_light_id, area_light_end_time) REFERENCES area_light(id, end_time)
		)`,
		`CREATE TABLE area_light_color (
			kind                TEXT CHECK(kind IN ('diffuse', 'ambient', 'specular', 'emission')) NOT NULL,
			area_light_id       INTEGER NOT NULL,
			area_light_end_time INTEGER NOT NULL,
			red                 INTEGER NOT NULL,
			green               INTEGER NOT NULL,
			blue                INTEGER NOT NULL,
			PRIMARY KEY (kind, area_light_id, area_light_end_time),
			FOREIGN KEY (area_light_id, area_light_end_time) REFERENCES area_light(id, end_time)
		)`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("create area_light schema: %w", err)
		}
	}
	return nil
}

func (t AreaLightTable) PopulateSQLTables(ctx context.Context, db *sql.DB) error {
	lightStmt, err := db.PrepareContext(ctx, `INSERT INTO area_light (id, end_time) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare area_light insert: %w", err)
	}
	defer lightStmt.Close()

	propStmt, err := db.PrepareContext(ctx, `INSERT INTO area_light_properties
		(light_id, area_light_id, area_light_end_time, red, green, blue, dir_x, dir_y, dir_z)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare area_light_properties insert: %w", err)
	}
	defer propStmt.Close()

	colorStmt, err := db.PrepareContext(ctx, `INSERT INTO area_light_color
		(kind, area_light_id, area_light_end_time, red, green, blue)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare area_light_color insert: %w", err)
	}
	defer colorStmt.Close()

	populateProps := func(lightIdx int, areaLightID int, endTime uint32, p *arealight.Properties) error {
		if p == nil {
			return nil
		}
		_, err := propStmt.ExecContext(ctx, lightIdx, areaLightID, endTime,
			p.Color.R, p.Color.G, p.Color.B,
			p.Direction.X.Float64(), p.Direction.Y.Float64(), p.Direction.Z.Float64())
		return err
	}

	populateColor := func(kind string, areaLightID int, endTime uint32, c nds.RGB) error {
		_, err := colorStmt.ExecContext(ctx, kind, areaLightID, endTime, c.R, c.G, c.B)
		return err
	}

	for areaLightID, al := range t.Records {
		for _, block := range al.Blocks {
			if _, err := lightStmt.ExecContext(ctx, areaLightID, block.EndTime); err != nil {
				return fmt.Errorf("insert area_light row: %w", err)
			}

			for idx, p := range []*arealight.Properties{block.Light0, block.Light1, block.Light2, block.Light3} {
				if err := populateProps(idx, areaLightID, block.EndTime, p); err != nil {
					return fmt.Errorf("insert area_light_properties row: %w", err)
				}
			}

			for _, kc := range []struct {
				kind  string
				color nds.RGB
			}{
				{"diffuse", block.DiffuseReflectColor},
				{"ambient", block.AmbientReflectColor},
				{"specular", block.SpecularReflectColor},
				{"emission", block.EmissionColor},
			} {
				if err := populateColor(kc.kind, areaLightID, block.EndTime, kc.color); err != nil {
					return fmt.Errorf("insert area_light_color row: %w", err)
				}
			}
		}
	}
	return nil
}
