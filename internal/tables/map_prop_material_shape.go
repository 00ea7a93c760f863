package tables

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kuruyia/pokeplat-tools/internal/plat/matshapes"
)

// MapPropMaterialShapeTable projects the build_model_matshp.dat file.
type MapPropMaterialShapeTable struct {
	Records []*matshapes.MaterialShapes
}

func (t MapPropMaterialShapeTable) CreateSQLTables(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE map_prop_material_shape (
			id                          INTEGER NOT NULL PRIMARY KEY,
			material_shape_ids_index    INTEGER NOT NULL
		)`,
		`CREATE TABLE map_prop_material_shape_ids (
			map_prop_material_shape_id  INTEGER NOT NULL,
			material_id                 INTEGER NOT NULL,
			shape_id                    INTEGER NOT NULL,
			PRIMARY KEY (map_prop_material_shape_id, material_id, shape_id),
			FOREIGN KEY (map_prop_material_shape_id) REFERENCES map_prop_material_shape(id)
		)`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("create map_prop_material_shape schema: %w", err)
		}
	}
	return nil
}

func (t MapPropMaterialShapeTable) PopulateSQLTables(ctx context.Context, db *sql.DB) error {
	shapeStmt, err := db.PrepareContext(ctx, `INSERT INTO map_prop_material_shape
		(id, material_shape_ids_index) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare map_prop_material_shape insert: %w", err)
	}
	defer shapeStmt.Close()

	idsStmt, err := db.PrepareContext(ctx, `INSERT INTO map_prop_material_shape_ids
		(map_prop_material_shape_id, material_id, shape_id) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare map_prop_material_shape_ids insert: %w", err)
	}
	defer idsStmt.Close()

	for id, rec := range t.Records {
		if rec == nil {
			continue
		}

		if _, err := shapeStmt.ExecContext(ctx, id, rec.IDsIndex); err != nil {
			return fmt.Errorf("insert map_prop_material_shape row %d: %w", id, err)
		}

		for _, ids := range rec.IDs {
			if _, err := idsStmt.ExecContext(ctx, id, ids.MaterialID, ids.ShapeID); err != nil {
				return fmt.Errorf("insert map_prop_material_shape_ids row: %w", err)
			}
		}
	}
	return nil
}
