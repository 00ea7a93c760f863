// Package areamapprops decodes the members of the area_build.narc archive.
package areamapprops

import (
	"encoding/binary"
	"fmt"
	"io"
)

// AreaMapProps lists the map prop IDs loaded when the player is in a map
// belonging to this area.
type AreaMapProps struct {
	MapPropsIDs []uint16
}

// Parse decodes an AreaMapProps record: a uint16 count followed by that
// many little-endian uint16 IDs.
func Parse(b []byte) (AreaMapProps, error) {
	if len(b) < 2 {
		return AreaMapProps{}, fmt.Errorf("areamapprops: %w", io.ErrUnexpectedEOF)
	}

	count := binary.LittleEndian.Uint16(b[0:2])
	need := 2 + int(count)*2
	if len(b) < need {
		return AreaMapProps{}, fmt.Errorf("areamapprops: %w", io.ErrUnexpectedEOF)
	}

	ids := make([]uint16, count)
	for i := range ids {
		off := 2 + i*2
		ids[i] = binary.LittleEndian.Uint16(b[off : off+2])
	}

	return AreaMapProps{MapPropsIDs: ids}, nil
}
