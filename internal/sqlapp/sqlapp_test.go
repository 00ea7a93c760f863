package sqlapp

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Kuruyia/pokeplat-tools/internal/loader"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/areadata"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/mapheader"
)

func TestPopulateCreatesEveryTableGroup(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	res := &loader.Resources{
		AreaData: []areadata.AreaData{{MapPropArchivesID: 1, MapTextureArchiveID: 2, AreaLightArchiveID: 3}},
	}

	ctx := context.Background()
	if err := Populate(ctx, db, res, mapheader.Dictionary{}); err != nil {
		t.Fatalf("Populate: %v", err)
	}

	tableNames := []string{
		"area_data", "area_map_prop", "map_matrix", "map_prop_animation_list",
		"map_prop_material_shape", "area_light", "land_data_terrain_attributes",
		"map_header",
	}
	for _, name := range tableNames {
		var got string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name = ?", name).Scan(&got)
		if err != nil {
			if err == sql.ErrNoRows {
				t.Errorf("table %s was not created", name)
				continue
			}
			t.Fatalf("query sqlite_master for %s: %v", name, err)
		}
	}

	var areaDataRows int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM area_data").Scan(&areaDataRows); err != nil {
		t.Fatalf("count area_data: %v", err)
	}
	if areaDataRows != 1 {
		t.Errorf("area_data rows = %d, want 1", areaDataRows)
	}
}
