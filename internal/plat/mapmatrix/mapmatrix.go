// Package mapmatrix decodes the members of the map_matrix.narc archive.
package mapmatrix

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrMapIndexOOB is returned by MapIndexToCoords when index is greater or
// equal to the map count of the matrix.
var ErrMapIndexOOB = errors.New("mapmatrix: map index out of bounds")

// ErrUtf8 is returned by Parse when the model name prefix is not valid UTF-8.
var ErrUtf8 = errors.New("mapmatrix: model name prefix is not valid utf-8")

// MapMatrix is a rectangular grid of maps sharing a model name prefix.
type MapMatrix struct {
	Height uint8
	Width  uint8

	// ModelNamePrefix is given to the associated map model NSBMD files.
	ModelNamePrefix string

	// MapHeaderIDs is present only if the corresponding section exists in
	// the source file.
	MapHeaderIDs []uint16

	// Altitudes is present only if the corresponding section exists in the
	// source file.
	Altitudes []uint8

	// LandDataIDs indexes the land_data.narc archive, in row-major order.
	LandDataIDs []uint16
}

// Parse decodes a MapMatrix record.
func Parse(b []byte) (MapMatrix, error) {
	r := &cursor{b: b}

	height, err := r.u8()
	if err != nil {
		return MapMatrix{}, err
	}
	width, err := r.u8()
	if err != nil {
		return MapMatrix{}, err
	}
	matrixSize := int(height) * int(width)

	hasMapHeaderIDs, err := r.u8()
	if err != nil {
		return MapMatrix{}, err
	}
	hasAltitudes, err := r.u8()
	if err != nil {
		return MapMatrix{}, err
	}

	prefixLen, err := r.u8()
	if err != nil {
		return MapMatrix{}, err
	}
	prefixBytes, err := r.take(int(prefixLen))
	if err != nil {
		return MapMatrix{}, err
	}
	if !utf8.Valid(prefixBytes) {
		return MapMatrix{}, ErrUtf8
	}

	m := MapMatrix{
		Height:          height,
		Width:           width,
		ModelNamePrefix: string(prefixBytes),
	}

	if hasMapHeaderIDs != 0 {
		ids, err := r.u16Slice(matrixSize)
		if err != nil {
			return MapMatrix{}, err
		}
		m.MapHeaderIDs = ids
	}

	if hasAltitudes != 0 {
		alts := make([]uint8, matrixSize)
		for i := range alts {
			v, err := r.u8()
			if err != nil {
				return MapMatrix{}, err
			}
			alts[i] = v
		}
		m.Altitudes = alts
	}

	landDataIDs, err := r.u16Slice(matrixSize)
	if err != nil {
		return MapMatrix{}, err
	}
	m.LandDataIDs = landDataIDs

	return m, nil
}

// MapIndexToCoords transforms a row-major map index into (x, y) coordinates.
func (m MapMatrix) MapIndexToCoords(index uint16) (x, y uint16, err error) {
	width := uint16(m.Width)
	count := width * uint16(m.Height)

	if index >= count {
		return 0, 0, fmt.Errorf("%w: index %d, count %d", ErrMapIndexOOB, index, count)
	}

	return index % width, index / width, nil
}

// cursor is a minimal little-endian byte-slice reader shared by the decoders
// in this package that do not warrant a full binary.Reader.
type cursor struct {
	b   []byte
	pos int
}

func (c *cursor) u8() (uint8, error) {
	if c.pos+1 > len(c.b) {
		return 0, fmt.Errorf("mapmatrix: %w", io.ErrUnexpectedEOF)
	}
	v := c.b[c.pos]
	c.pos++
	return v, nil
}

func (c *cursor) take(n int) ([]byte, error) {
	if c.pos+n > len(c.b) {
		return nil, fmt.Errorf("mapmatrix: %w", io.ErrUnexpectedEOF)
	}
	v := c.b[c.pos : c.pos+n]
	c.pos += n
	return v, nil
}

func (c *cursor) u16Slice(n int) ([]uint16, error) {
	out := make([]uint16, n)
	for i := range out {
		raw, err := c.take(2)
		if err != nil {
			return nil, err
		}
		out[i] = binary.LittleEndian.Uint16(raw)
	}
	return out, nil
}
