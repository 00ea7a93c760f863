// Package areadata decodes the members of the area_data.narc archive.
//
// Areas are a middle ground between maps and map matrices: they group maps
// together, and a map matrix can reference multiple areas, though a map
// belongs to exactly one area.
package areadata

import "encoding/binary"

// Size is the byte size of a single AreaData record.
const Size = 8

// AreaData references the other archives associated with an area.
type AreaData struct {
	// MapPropArchivesID indexes the associated member in the
	// area_build.narc and areabm_texset.narc archives.
	MapPropArchivesID uint16

	// MapTextureArchiveID indexes the associated member in the
	// map_tex_set.narc archive.
	MapTextureArchiveID uint16

	// AreaLightArchiveID indexes the associated member in the
	// arealight.narc archive.
	AreaLightArchiveID uint16

	// Dummy is unused by the game but preserved for fidelity.
	Dummy uint16
}

// Parse decodes an AreaData record from an 8-byte slice.
func Parse(b []byte) AreaData {
	_ = b[Size-1]
	return AreaData{
		MapPropArchivesID:   binary.LittleEndian.Uint16(b[0:2]),
		MapTextureArchiveID: binary.LittleEndian.Uint16(b[2:4]),
		Dummy:               binary.LittleEndian.Uint16(b[4:6]),
		AreaLightArchiveID:  binary.LittleEndian.Uint16(b[6:8]),
	}
}
