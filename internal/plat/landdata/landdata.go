// Package landdata decodes the members of the land_data.narc archive: per-map
// terrain attributes, map prop placements, the opaque map model blob, and
// embedded BDHC collision geometry.
package landdata

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Kuruyia/pokeplat-tools/internal/nds"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/bdhc"
)

// HeaderSize is the size in bytes of the land data header.
const HeaderSize = 16

const (
	terrainAttrElemSize = 2
	mapPropElemSize      = 48

	terrainAttrTileBehaviorMask uint16 = 0x00FF
	terrainAttrCollisionMask    uint16 = 0x8000
)

// MapTilesCountX and MapTilesCountY are the dimensions, in tiles, of a
// single map.
const (
	MapTilesCountX = 32
	MapTilesCountY = 32
	MapTilesCount  = MapTilesCountX * MapTilesCountY
)

// ErrTileIndexOOB is returned by TileIndexToCoords when the index is
// greater or equal to MapTilesCount.
var ErrTileIndexOOB = errors.New("landdata: tile index out of bounds")

// TerrainAttributes describes one 32x32 terrain tile.
type TerrainAttributes struct {
	// TileBehavior dictates how the tile behaves when the player interacts
	// with it (tall grass, water, a trash can, etc).
	TileBehavior uint16
	HasCollision bool
}

func terrainAttributesFromRaw(raw uint16) TerrainAttributes {
	return TerrainAttributes{
		TileBehavior: raw & terrainAttrTileBehaviorMask,
		HasCollision: raw&terrainAttrCollisionMask != 0,
	}
}

// MapPropInstance places one map prop model on the map.
type MapPropInstance struct {
	// MapPropModelID indexes the associated model in build_model.narc.
	MapPropModelID uint32
	Position       nds.VecFixed32
	// Rotation angles are each in the range [0, 65535].
	Rotation nds.VecFixed32
	// Scale of 1.0 is the original model size.
	Scale nds.VecFixed32
	// Dummy is unused by the game but preserved for fidelity.
	Dummy [2]uint32
}

func mapPropInstanceFromBytes(b []byte) MapPropInstance {
	readFixed32Vec := func(off int) nds.VecFixed32 {
		return nds.VecFixed32{
			X: nds.Fixed32FromBits(int32(binary.LittleEndian.Uint32(b[off : off+4]))),
			Y: nds.Fixed32FromBits(int32(binary.LittleEndian.Uint32(b[off+4 : off+8]))),
			Z: nds.Fixed32FromBits(int32(binary.LittleEndian.Uint32(b[off+8 : off+12]))),
		}
	}

	return MapPropInstance{
		MapPropModelID: binary.LittleEndian.Uint32(b[0:4]),
		Position:       readFixed32Vec(4),
		Rotation:       readFixed32Vec(16),
		Scale:          readFixed32Vec(28),
		Dummy: [2]uint32{
			binary.LittleEndian.Uint32(b[40:44]),
			binary.LittleEndian.Uint32(b[44:48]),
		},
	}
}

// LandData is one fully decoded land_data.narc member.
type LandData struct {
	// TerrainAttributes is a row-major 32x32 grid.
	TerrainAttributes []TerrainAttributes
	MapProps          []MapPropInstance
	// MapModel is an opaque NSBMD blob, passed through unparsed.
	MapModel []byte
	Bdhc     bdhc.Bdhc
}

// Parse decodes a LandData record.
func Parse(b []byte) (LandData, error) {
	if len(b) < HeaderSize {
		return LandData{}, fmt.Errorf("landdata: %w", io.ErrUnexpectedEOF)
	}

	terrainAttrSize := binary.LittleEndian.Uint32(b[0:4])
	mapPropsSize := binary.LittleEndian.Uint32(b[4:8])
	mapModelSize := binary.LittleEndian.Uint32(b[8:12])
	bdhcSize := binary.LittleEndian.Uint32(b[12:16])

	terrainAttrOff := uint64(HeaderSize)
	mapPropsOff := terrainAttrOff + uint64(terrainAttrSize)
	mapModelOff := mapPropsOff + uint64(mapPropsSize)
	bdhcOff := mapModelOff + uint64(mapModelSize)
	end := bdhcOff + uint64(bdhcSize)

	if end > uint64(len(b)) {
		return LandData{}, fmt.Errorf("landdata: %w: section sizes exceed member length", io.ErrUnexpectedEOF)
	}

	terrainAttrCount := int(terrainAttrSize) / terrainAttrElemSize
	mapPropsCount := int(mapPropsSize) / mapPropElemSize

	terrainAttrs := make([]TerrainAttributes, terrainAttrCount)
	for i := 0; i < terrainAttrCount; i++ {
		off := int(terrainAttrOff) + i*terrainAttrElemSize
		terrainAttrs[i] = terrainAttributesFromRaw(binary.LittleEndian.Uint16(b[off : off+2]))
	}

	mapProps := make([]MapPropInstance, mapPropsCount)
	for i := 0; i < mapPropsCount; i++ {
		off := int(mapPropsOff) + i*mapPropElemSize
		mapProps[i] = mapPropInstanceFromBytes(b[off : off+mapPropElemSize])
	}

	mapModel := append([]byte(nil), b[mapModelOff:mapModelOff+uint64(mapModelSize)]...)

	rawBdhc := b[bdhcOff : bdhcOff+uint64(bdhcSize)]
	decodedBdhc, err := bdhc.Parse(rawBdhc)
	if err != nil {
		return LandData{}, fmt.Errorf("landdata: parse bdhc: %w", err)
	}

	return LandData{
		TerrainAttributes: terrainAttrs,
		MapProps:          mapProps,
		MapModel:          mapModel,
		Bdhc:              decodedBdhc,
	}, nil
}

// TileIndexToCoords transforms a row-major tile index into (x, y)
// coordinates within a single map.
func TileIndexToCoords(index uint32) (x, y uint32, err error) {
	if index >= MapTilesCount {
		return 0, 0, fmt.Errorf("%w: index %d", ErrTileIndexOOB, index)
	}
	return index % MapTilesCountX, index / MapTilesCountX, nil
}
