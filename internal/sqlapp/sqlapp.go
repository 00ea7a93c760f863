// Package sqlapp wires a loaded asset bundle into a SQLite database and
// exposes the two user-facing commands built on top of it: an export to a
// file and an interactive query REPL.
package sqlapp

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/Kuruyia/pokeplat-tools/internal/loader"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/mapheader"
	"github.com/Kuruyia/pokeplat-tools/internal/tables"
)

// Populate creates every table group's schema and inserts its rows, in the
// fixed order the projection layer expects (spec.md's component K: schema
// objects are all created up front, then every group is populated).
func Populate(ctx context.Context, db *sql.DB, res *loader.Resources, headers mapheader.Dictionary) error {
	groups := []struct {
		name string
		p    tables.PopulateSql
	}{
		{"area_data", tables.AreaDataTable{Records: res.AreaData}},
		{"area_map_props", tables.AreaMapPropsTable{Records: res.AreaMapProps}},
		{"map_matrix", tables.MapMatrixTable{Records: res.MapMatrices}},
		{"map_prop_animation_list", tables.MapPropAnimationListTable{Records: res.MapPropAnimationLists}},
		{"map_prop_material_shape", tables.MapPropMaterialShapeTable{Records: res.MapPropMaterialShapes}},
		{"area_light", tables.AreaLightTable{Records: res.AreaLights}},
		{"land_data", tables.LandDataTable{Records: res.LandData}},
		{"map_header", tables.MapHeaderTable{Records: headers}},
	}

	for _, g := range groups {
		if err := g.p.CreateSQLTables(ctx, db); err != nil {
			return fmt.Errorf("sqlapp: create %s tables: %w", g.name, err)
		}
	}
	for _, g := range groups {
		if err := g.p.PopulateSQLTables(ctx, db); err != nil {
			return fmt.Errorf("sqlapp: populate %s tables: %w", g.name, err)
		}
	}

	return nil
}

// OpenMemory opens an in-memory SQLite database, suitable for the REPL.
func OpenMemory() (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		return nil, fmt.Errorf("sqlapp: open in-memory database: %w", err)
	}
	// The in-memory driver backs all connections on one shared database only
	// as long as a single connection is held open for the database's life.
	db.SetMaxOpenConns(1)
	return db, nil
}
