// Package bdhc decodes BDHC collision geometry data embedded in land data
// records.
package bdhc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Kuruyia/pokeplat-tools/internal/nds"
)

// Magic is the expected magic number at the start of a BDHC blob,
// corresponding to the ASCII string "BDHC" read as a little-endian uint32.
const Magic uint32 = 0x43484442

// HeaderSize is the size in bytes of the BDHC header, not counting the
// magic number.
const HeaderSize = 12

const (
	pointSize = 8
	plateSize = 8
	stripSize = 8
)

// ErrInvalidMagic is returned when a blob does not start with Magic.
var ErrInvalidMagic = errors.New("bdhc: invalid magic")

// Header holds the element counts of each BDHC section.
type Header struct {
	PointsCount     uint16
	NormalsCount    uint16
	ConstantsCount  uint16
	PlatesCount     uint16
	StripsCount     uint16
	AccessListCount uint16
}

// Point is a 2D point (X, Z) used to define plate boundaries.
type Point struct {
	X, Z nds.Fixed32
}

// Plate references the points, normal and constant that define one
// collision plane segment.
type Plate struct {
	FirstPointIndex  uint16
	SecondPointIndex uint16
	NormalIndex      uint16
	ConstantIndex    uint16
}

// Strip groups plates that all pass through the same scanline, together
// with the slice of the access list that lists their indices.
type Strip struct {
	Scanline              nds.Fixed32
	AccessListElementCount uint16
	AccessListStartIndex   uint16
}

// Bdhc is a fully decoded BDHC collision geometry blob.
type Bdhc struct {
	Points     []Point
	Normals    []nds.VecFixed32
	Constants  []nds.Fixed32
	Plates     []Plate
	Strips     []Strip
	AccessList []uint16
}

// Parse decodes a Bdhc from its raw byte representation.
func Parse(b []byte) (Bdhc, error) {
	r := &reader{b: b}

	magic, err := r.u32()
	if err != nil {
		return Bdhc{}, err
	}
	if magic != Magic {
		return Bdhc{}, fmt.Errorf("%w: 0x%08X", ErrInvalidMagic, magic)
	}

	headerBytes, err := r.take(HeaderSize)
	if err != nil {
		return Bdhc{}, err
	}
	h := Header{
		PointsCount:     binary.LittleEndian.Uint16(headerBytes[0:2]),
		NormalsCount:    binary.LittleEndian.Uint16(headerBytes[2:4]),
		ConstantsCount:  binary.LittleEndian.Uint16(headerBytes[4:6]),
		PlatesCount:     binary.LittleEndian.Uint16(headerBytes[6:8]),
		StripsCount:     binary.LittleEndian.Uint16(headerBytes[8:10]),
		AccessListCount: binary.LittleEndian.Uint16(headerBytes[10:12]),
	}

	points := make([]Point, h.PointsCount)
	for i := range points {
		raw, err := r.take(pointSize)
		if err != nil {
			return Bdhc{}, err
		}
		points[i] = Point{
			X: nds.Fixed32FromBits(int32(binary.LittleEndian.Uint32(raw[0:4]))),
			Z: nds.Fixed32FromBits(int32(binary.LittleEndian.Uint32(raw[4:8]))),
		}
	}

	normals := make([]nds.VecFixed32, h.NormalsCount)
	for i := range normals {
		raw, err := r.take(nds.VecFixed32Size)
		if err != nil {
			return Bdhc{}, err
		}
		normals[i] = nds.VecFixed32{
			X: nds.Fixed32FromBits(int32(binary.LittleEndian.Uint32(raw[0:4]))),
			Y: nds.Fixed32FromBits(int32(binary.LittleEndian.Uint32(raw[4:8]))),
			Z: nds.Fixed32FromBits(int32(binary.LittleEndian.Uint32(raw[8:12]))),
		}
	}

	constants := make([]nds.Fixed32, h.ConstantsCount)
	for i := range constants {
		raw, err := r.take(nds.Fixed32Size)
		if err != nil {
			return Bdhc{}, err
		}
		constants[i] = nds.Fixed32FromBits(int32(binary.LittleEndian.Uint32(raw)))
	}

	plates := make([]Plate, h.PlatesCount)
	for i := range plates {
		raw, err := r.take(plateSize)
		if err != nil {
			return Bdhc{}, err
		}
		plates[i] = Plate{
			FirstPointIndex:  binary.LittleEndian.Uint16(raw[0:2]),
			SecondPointIndex: binary.LittleEndian.Uint16(raw[2:4]),
			NormalIndex:      binary.LittleEndian.Uint16(raw[4:6]),
			ConstantIndex:    binary.LittleEndian.Uint16(raw[6:8]),
		}
	}

	strips := make([]Strip, h.StripsCount)
	for i := range strips {
		raw, err := r.take(stripSize)
		if err != nil {
			return Bdhc{}, err
		}
		strips[i] = Strip{
			Scanline:               nds.Fixed32FromBits(int32(binary.LittleEndian.Uint32(raw[0:4]))),
			AccessListElementCount: binary.LittleEndian.Uint16(raw[4:6]),
			AccessListStartIndex:   binary.LittleEndian.Uint16(raw[6:8]),
		}
	}

	accessList := make([]uint16, h.AccessListCount)
	for i := range accessList {
		raw, err := r.take(2)
		if err != nil {
			return Bdhc{}, err
		}
		accessList[i] = binary.LittleEndian.Uint16(raw)
	}

	return Bdhc{
		Points:     points,
		Normals:    normals,
		Constants:  constants,
		Plates:     plates,
		Strips:     strips,
		AccessList: accessList,
	}, nil
}

type reader struct {
	b   []byte
	pos int
}

func (r *reader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.b) {
		return nil, fmt.Errorf("bdhc: %w", io.ErrUnexpectedEOF)
	}
	v := r.b[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	raw, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(raw), nil
}
