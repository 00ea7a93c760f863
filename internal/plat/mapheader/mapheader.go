// Package mapheader describes the map header metadata table that the game
// embeds directly in its binary rather than in an asset archive.
//
// Decoding that binary table is out of scope for this tool: callers obtain a
// Dictionary from wherever they keep it (an extracted ROM table, a
// hand-maintained fixture, a future binary-table reader) and hand it to the
// projection layer as an opaque, already-decoded lookup.
package mapheader

// MapHeader carries metadata about a single map.
type MapHeader struct {
	// AreaDataArchiveID indexes the associated member in area_data.narc.
	AreaDataArchiveID uint8
	Unk               uint8

	// MapMatrixID indexes the associated member in map_matrix.narc.
	MapMatrixID uint16

	// ScriptsArchiveID indexes the associated member in scr_seq.narc.
	ScriptsArchiveID uint16
	// InitScriptsArchiveID indexes the member in scr_seq.narc used for map
	// initialization.
	InitScriptsArchiveID uint16
	// MsgArchiveID indexes the associated member in pl_msg.narc.
	MsgArchiveID uint16

	DayMusicID   uint16
	NightMusicID uint16

	// WildEncountersArchiveID indexes the associated member in
	// pl_enc_data.narc.
	WildEncountersArchiveID uint16
	// EventsArchiveID indexes the associated member in zone_event.narc.
	EventsArchiveID uint16

	// MapLabelTextID indexes the location names text bank in pl_msg.narc.
	MapLabelTextID uint16
	// MapLabelWindowID, multiplied by 2, indexes the associated member in
	// area_win_gra.narc.
	MapLabelWindowID uint16

	Weather    uint8
	CameraType uint8
	MapType    uint16
	BattleBG   uint16

	IsBikeAllowed       bool
	IsRunningAllowed    bool
	IsEscapeRopeAllowed bool
	IsFlyAllowed        bool
}

// Dictionary maps a map header ID to its decoded metadata.
type Dictionary map[int]MapHeader
