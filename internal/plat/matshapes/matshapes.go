// Package matshapes decodes the build_model_matshp.dat file: the material
// and shape (mesh) IDs associated with each map prop model.
package matshapes

import (
	"encoding/binary"
	"fmt"
	"io"
)

// IDs pairs a material ID with a shape (mesh) ID.
type IDs struct {
	MaterialID uint16
	ShapeID    uint16
}

// MaterialShapes is the material/shape ID set belonging to a single map prop
// model, or nil if the model has none.
type MaterialShapes struct {
	// IDsIndex is where the first ID was located in the file's flat IDs
	// list, preserved for diagnostic/debugging purposes.
	IDsIndex uint16
	IDs      []IDs
}

type locator struct {
	idsCount uint16
	idsIndex uint16
}

// Parse decodes the full build_model_matshp.dat file into one optional
// MaterialShapes per locator, in file order.
func Parse(b []byte) ([]*MaterialShapes, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("matshapes: %w", io.ErrUnexpectedEOF)
	}

	locatorsCount := binary.LittleEndian.Uint16(b[0:2])
	idsCount := binary.LittleEndian.Uint16(b[2:4])

	cursor := 4

	locators := make([]locator, locatorsCount)
	for i := range locators {
		if cursor+4 > len(b) {
			return nil, fmt.Errorf("matshapes: %w", io.ErrUnexpectedEOF)
		}
		locators[i] = locator{
			idsCount: binary.LittleEndian.Uint16(b[cursor : cursor+2]),
			idsIndex: binary.LittleEndian.Uint16(b[cursor+2 : cursor+4]),
		}
		cursor += 4
	}

	ids := make([]IDs, idsCount)
	for i := range ids {
		if cursor+4 > len(b) {
			return nil, fmt.Errorf("matshapes: %w", io.ErrUnexpectedEOF)
		}
		ids[i] = IDs{
			MaterialID: binary.LittleEndian.Uint16(b[cursor : cursor+2]),
			ShapeID:    binary.LittleEndian.Uint16(b[cursor+2 : cursor+4]),
		}
		cursor += 4
	}

	out := make([]*MaterialShapes, len(locators))
	for i, loc := range locators {
		if loc.idsCount == 0 {
			continue
		}

		start := int(loc.idsIndex)
		end := int(loc.idsIndex) + int(loc.idsCount) // exclusive; inclusive range end_index = start+count-1
		if end > len(ids) {
			return nil, fmt.Errorf("matshapes: %w: ids slice [%d:%d) exceeds %d entries", io.ErrUnexpectedEOF, start, end, len(ids))
		}

		rec := &MaterialShapes{
			IDsIndex: loc.idsIndex,
			IDs:      append([]IDs(nil), ids[start:end]...),
		}
		out[i] = rec
	}

	return out, nil
}
