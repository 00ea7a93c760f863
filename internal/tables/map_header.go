package tables

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kuruyia/pokeplat-tools/internal/plat/mapheader"
)

// MapHeaderTable projects the (externally supplied) map header dictionary
// into the map_header table.
type MapHeaderTable struct {
	Records mapheader.Dictionary
}

func (t MapHeaderTable) CreateSQLTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE map_header (
		id                          INTEGER NOT NULL PRIMARY KEY,
		area_data_archive_id        INTEGER NOT NULL,
		unk                         INTEGER NOT NULL,
		map_matrix_id               INTEGER NOT NULL,
		scripts_archive_id          INTEGER NOT NULL,
		init_scripts_archive_id     INTEGER NOT NULL,
		msg_archive_id              INTEGER NOT NULL,
		day_music_id                INTEGER NOT NULL,
		night_music_id              INTEGER NOT NULL,
		wild_encounters_archive_id  INTEGER NOT NULL,
		events_archive_id           INTEGER NOT NULL,
		map_label_text_id           INTEGER NOT NULL,
		map_label_window_id         INTEGER NOT NULL,
		weather                     INTEGER NOT NULL,
		camera_type                 INTEGER NOT NULL,
		map_type                    INTEGER NOT NULL,
		battle_bg                   INTEGER NOT NULL,
		is_bike_allowed             INTEGER NOT NULL,
		is_running_allowed          INTEGER NOT NULL,
		is_escape_rope_allowed      INTEGER NOT NULL,
		is_fly_allowed              INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create map_header table: %w", err)
	}
	return nil
}

func (t MapHeaderTable) PopulateSQLTables(ctx context.Context, db *sql.DB) error {
	stmt, err := db.PrepareContext(ctx, `INSERT INTO map_header (
		id, area_data_archive_id, unk, map_matrix_id, scripts_archive_id,
		init_scripts_archive_id, msg_archive_id, day_music_id, night_music_id,
		wild_encounters_archive_id, events_archive_id, map_label_text_id,
		map_label_window_id, weather, camera_type, map_type, battle_bg,
		is_bike_allowed, is_running_allowed, is_escape_rope_allowed, is_fly_allowed
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare map_header insert: %w", err)
	}
	defer stmt.Close()

	for id, h := range t.Records {
		if _, err := stmt.ExecContext(ctx, id,
			h.AreaDataArchiveID, h.Unk, h.MapMatrixID, h.ScriptsArchiveID,
			h.InitScriptsArchiveID, h.MsgArchiveID, h.DayMusicID, h.NightMusicID,
			h.WildEncountersArchiveID, h.EventsArchiveID, h.MapLabelTextID,
			h.MapLabelWindowID, h.Weather, h.CameraType, h.MapType, h.BattleBG,
			h.IsBikeAllowed, h.IsRunningAllowed, h.IsEscapeRopeAllowed, h.IsFlyAllowed,
		); err != nil {
			return fmt.Errorf("insert map_header row %d: %w", id, err)
		}
	}
	return nil
}
