package tables_test

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/Kuruyia/pokeplat-tools/internal/nds"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/bdhc"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/landdata"
	"github.com/Kuruyia/pokeplat-tools/internal/tables"
)

func TestLandDataForeignKeysSatisfied(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign_keys: %v", err)
	}

	ld := landdata.LandData{
		TerrainAttributes: make([]landdata.TerrainAttributes, landdata.MapTilesCount),
		MapProps: []landdata.MapPropInstance{
			{MapPropModelID: 7},
		},
		Bdhc: bdhc.Bdhc{
			Points:    []bdhc.Point{{X: nds.Fixed32FromBits(0), Z: nds.Fixed32FromBits(0)}},
			Normals:   []nds.VecFixed32{{X: nds.Fixed32FromBits(0), Y: nds.Fixed32FromBits(4096), Z: nds.Fixed32FromBits(0)}},
			Constants: []nds.Fixed32{nds.Fixed32FromBits(4096)},
			Plates: []bdhc.Plate{
				{FirstPointIndex: 0, SecondPointIndex: 0, NormalIndex: 0, ConstantIndex: 0},
			},
			Strips: []bdhc.Strip{
				{Scanline: nds.Fixed32FromBits(0), AccessListElementCount: 1, AccessListStartIndex: 0},
			},
			AccessList: []uint16{0},
		},
	}

	tbl := tables.LandDataTable{Records: []landdata.LandData{ld}}
	ctx := context.Background()
	if err := tables.CreateAndPopulate(ctx, db, "land_data", tbl); err != nil {
		t.Fatalf("CreateAndPopulate: %v", err)
	}

	var terrainRows int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM land_data_terrain_attributes").Scan(&terrainRows); err != nil {
		t.Fatalf("count land_data_terrain_attributes: %v", err)
	}
	if terrainRows != landdata.MapTilesCount {
		t.Errorf("land_data_terrain_attributes rows = %d, want %d", terrainRows, landdata.MapTilesCount)
	}

	var plateRows int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bdhc_plate").Scan(&plateRows); err != nil {
		t.Fatalf("count bdhc_plate: %v", err)
	}
	if plateRows != 1 {
		t.Errorf("bdhc_plate rows = %d, want 1", plateRows)
	}

	var violations int
	if err := db.QueryRowContext(ctx, "PRAGMA foreign_key_check").Scan(&violations); err == nil {
		t.Errorf("foreign_key_check reported a violation row: %v", violations)
	} else if err != sql.ErrNoRows {
		t.Fatalf("foreign_key_check: %v", err)
	}
}
