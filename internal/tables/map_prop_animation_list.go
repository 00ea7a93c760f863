package tables

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kuruyia/pokeplat-tools/internal/plat/mappropanimlist"
)

// MapPropAnimationListTable projects the bm_anime_list.narc archive.
type MapPropAnimationListTable struct {
	Records []mappropanimlist.MapPropAnimationList
}

func (t MapPropAnimationListTable) CreateSQLTables(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE map_prop_animation_list (
			id                              INTEGER NOT NULL PRIMARY KEY,
			deferred_loading                INTEGER NOT NULL,
			deferred_add_to_render_object   INTEGER NOT NULL,
			is_bicycle_slope                INTEGER NOT NULL
		)`,
		`CREATE TABLE map_prop_animation_list_ids (
			animation_id                INTEGER NOT NULL,
			map_prop_animation_list_id  INTEGER NOT NULL,
			PRIMARY KEY (animation_id, map_prop_animation_list_id),
			FOREIGN KEY (map_prop_animation_list_id) REFERENCES map_prop_animation_list(id)
		)`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("create map_prop_animation_list schema: %w", err)
		}
	}
	return nil
}

func (t MapPropAnimationListTable) PopulateSQLTables(ctx context.Context, db *sql.DB) error {
	listStmt, err := db.PrepareContext(ctx, `INSERT INTO map_prop_animation_list
		(id, deferred_loading, deferred_add_to_render_object, is_bicycle_slope)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare map_prop_animation_list insert: %w", err)
	}
	defer listStmt.Close()

	idsStmt, err := db.PrepareContext(ctx, `INSERT INTO map_prop_animation_list_ids
		(animation_id, map_prop_animation_list_id) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare map_prop_animation_list_ids insert: %w", err)
	}
	defer idsStmt.Close()

	for id, rec := range t.Records {
		if _, err := listStmt.ExecContext(ctx, id, rec.DeferredLoading, rec.DeferredAddToRenderObject, rec.IsBicycleSlope); err != nil {
			return fmt.Errorf("insert map_prop_animation_list row %d: %w", id, err)
		}

		for _, animID := range rec.AnimationIDs {
			if _, err := idsStmt.ExecContext(ctx, animID, id); err != nil {
				return fmt.Errorf("insert map_prop_animation_list_ids row: %w", err)
			}
		}
	}
	return nil
}
