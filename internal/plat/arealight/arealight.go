// Package arealight decodes the members of the arealight.narc archive: a
// UTF-8, newline/comma-delimited text format describing per-time-of-day
// lighting setups.
package arealight

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Kuruyia/pokeplat-tools/internal/nds"
)

// blockLine enumerates the fields of an area light block, in file order.
type blockLine int

const (
	lineEndTime blockLine = iota
	lineLight0
	lineLight1
	lineLight2
	lineLight3
	lineDiffuse
	lineAmbient
	lineSpecular
	lineEmission
	lineEnd
)

func (l blockLine) next() blockLine {
	if l == lineEnd {
		return lineEnd
	}
	return l + 1
}

func (l blockLine) String() string {
	switch l {
	case lineEndTime:
		return "EndTime"
	case lineLight0:
		return "Light0"
	case lineLight1:
		return "Light1"
	case lineLight2:
		return "Light2"
	case lineLight3:
		return "Light3"
	case lineDiffuse:
		return "DiffuseReflectColor"
	case lineAmbient:
		return "AmbientReflectColor"
	case lineSpecular:
		return "SpecularReflectColor"
	case lineEmission:
		return "EmissionColor"
	default:
		return "End"
	}
}

// Sentinel errors for malformed area light text.
var (
	ErrConversion      = errors.New("arealight: invalid UTF-8")
	ErrEarlyEmptyLine  = errors.New("arealight: unexpected empty line inside a block")
	ErrBlockOverrun    = errors.New("arealight: parser overran the end of a block")
	ErrMalformedLine   = errors.New("arealight: malformed block line")
	ErrMalformedParam  = errors.New("arealight: malformed parameter")
	ErrNotEnoughParams = errors.New("arealight: not enough parameters on line")
)

// Properties holds the color and direction vector of one Nintendo DS light.
type Properties struct {
	Color     nds.RGB
	Direction nds.VecFixed16
}

// Block is a single time-of-day lighting setup.
type Block struct {
	// EndTime is in seconds divided by 2, since midnight.
	EndTime uint32

	// Light0 is used for 2D sprites, the 3D map model, and most map prop
	// polygons. Nil if this light was specified as invalid.
	Light0 *Properties
	// Light1 is seemingly unused in the game.
	Light1 *Properties
	// Light2 is used for building windows.
	Light2 *Properties
	// Light3 is used for lamp post lights, and building lights and doors.
	Light3 *Properties

	DiffuseReflectColor  nds.RGB
	AmbientReflectColor  nds.RGB
	SpecularReflectColor nds.RGB
	EmissionColor        nds.RGB
}

// AreaLight is a fully decoded arealight.narc member.
type AreaLight struct {
	Blocks []Block
}

// Parse decodes an AreaLight from its raw byte representation, then applies
// the same direction-vector clamp the game performs at load time (see Fix).
func Parse(b []byte) (AreaLight, error) {
	if !utf8.Valid(b) {
		return AreaLight{}, ErrConversion
	}

	al, err := ParseString(string(b))
	if err != nil {
		return AreaLight{}, err
	}

	al.Fix()
	return al, nil
}

// ParseString decodes an AreaLight from its UTF-8 text representation,
// without applying the post-parse direction clamp.
func ParseString(s string) (AreaLight, error) {
	var blocks []Block
	current := Block{}
	line := lineEndTime

	for i, rawLine := range strings.Split(s, "\n") {
		rawLine = strings.TrimRight(rawLine, "\r")

		if rawLine == "" {
			if line == lineEndTime {
				continue
			}
			return AreaLight{}, fmt.Errorf("%w: line %d", ErrEarlyEmptyLine, i)
		}
		if rawLine == "EOF" {
			break
		}

		var err error
		switch line {
		case lineEndTime:
			parts := strings.SplitN(rawLine, ",", 2)
			if len(parts) == 0 || parts[0] == "" {
				return AreaLight{}, fmt.Errorf("%w (%s, line %d)", ErrMalformedLine, line, i)
			}
			v, perr := strconv.ParseUint(parts[0], 10, 32)
			if perr != nil {
				return AreaLight{}, fmt.Errorf("%w (%s, line %d, param 0): %v", ErrMalformedParam, line, i, perr)
			}
			current.EndTime = uint32(v)
		case lineLight0:
			current.Light0, err = parseLightLine(rawLine, line, i)
		case lineLight1:
			current.Light1, err = parseLightLine(rawLine, line, i)
		case lineLight2:
			current.Light2, err = parseLightLine(rawLine, line, i)
		case lineLight3:
			current.Light3, err = parseLightLine(rawLine, line, i)
		case lineDiffuse:
			current.DiffuseReflectColor, err = parseColorLine(rawLine, line, i)
		case lineAmbient:
			current.AmbientReflectColor, err = parseColorLine(rawLine, line, i)
		case lineSpecular:
			current.SpecularReflectColor, err = parseColorLine(rawLine, line, i)
		case lineEmission:
			current.EmissionColor, err = parseColorLine(rawLine, line, i)
		default:
			return AreaLight{}, ErrBlockOverrun
		}
		if err != nil {
			return AreaLight{}, err
		}

		line = line.next()
		if line == lineEnd {
			blocks = append(blocks, current)
			current = Block{}
			line = lineEndTime
		}
	}

	return AreaLight{Blocks: blocks}, nil
}

func parseLightLine(line string, bl blockLine, lineNo int) (*Properties, error) {
	params := strings.Split(line, ",")
	if len(params) < 1 {
		return nil, fmt.Errorf("%w (%s, line %d)", ErrNotEnoughParams, bl, lineNo)
	}

	if params[0] != "1" {
		return nil, nil
	}

	if len(params) < 4 {
		return nil, fmt.Errorf("%w (%s, line %d)", ErrNotEnoughParams, bl, lineNo)
	}

	color, err := parseColorParams(params[1:4], bl, lineNo, 1)
	if err != nil {
		return nil, err
	}

	if len(params) < 7 {
		return nil, fmt.Errorf("%w (%s, line %d)", ErrNotEnoughParams, bl, lineNo)
	}

	direction, err := parseVectorParams(params[4:7], bl, lineNo, 4)
	if err != nil {
		return nil, err
	}

	return &Properties{Color: color, Direction: direction}, nil
}

func parseColorLine(line string, bl blockLine, lineNo int) (nds.RGB, error) {
	params := strings.Split(line, ",")
	if len(params) < 3 {
		return nds.RGB{}, fmt.Errorf("%w (%s, line %d)", ErrNotEnoughParams, bl, lineNo)
	}
	return parseColorParams(params[0:3], bl, lineNo, 0)
}

func parseColorParams(params []string, bl blockLine, lineNo int, firstParamIdx int) (nds.RGB, error) {
	r, err := strconv.ParseUint(params[0], 10, 8)
	if err != nil {
		return nds.RGB{}, fmt.Errorf("%w (%s, line %d, param %d): %v", ErrMalformedParam, bl, lineNo, firstParamIdx, err)
	}
	g, err := strconv.ParseUint(params[1], 10, 8)
	if err != nil {
		return nds.RGB{}, fmt.Errorf("%w (%s, line %d, param %d): %v", ErrMalformedParam, bl, lineNo, firstParamIdx+1, err)
	}
	bch, err := strconv.ParseUint(params[2], 10, 8)
	if err != nil {
		return nds.RGB{}, fmt.Errorf("%w (%s, line %d, param %d): %v", ErrMalformedParam, bl, lineNo, firstParamIdx+2, err)
	}

	return nds.RGB{R: uint8(r), G: uint8(g), B: uint8(bch)}, nil
}

// parseVectorParams parses each component as the literal decimal text of the
// raw i16 bit pattern for a Fixed16 value — the file stores direction
// components as fixed-point bits written in decimal, not as scaled floats.
func parseVectorParams(params []string, bl blockLine, lineNo int, firstParamIdx int) (nds.VecFixed16, error) {
	x, err := strconv.ParseInt(params[0], 10, 16)
	if err != nil {
		return nds.VecFixed16{}, fmt.Errorf("%w (%s, line %d, param %d): %v", ErrMalformedParam, bl, lineNo, firstParamIdx, err)
	}
	y, err := strconv.ParseInt(params[1], 10, 16)
	if err != nil {
		return nds.VecFixed16{}, fmt.Errorf("%w (%s, line %d, param %d): %v", ErrMalformedParam, bl, lineNo, firstParamIdx+1, err)
	}
	z, err := strconv.ParseInt(params[2], 10, 16)
	if err != nil {
		return nds.VecFixed16{}, fmt.Errorf("%w (%s, line %d, param %d): %v", ErrMalformedParam, bl, lineNo, firstParamIdx+2, err)
	}

	return nds.VecFixed16{
		X: nds.Fixed16FromBits(int16(x)),
		Y: nds.Fixed16FromBits(int16(y)),
		Z: nds.Fixed16FromBits(int16(z)),
	}, nil
}

// Fix clamps every light's direction vector components to the unit range,
// aligning the parsed values with how the game interprets them.
func (al *AreaLight) Fix() {
	for i := range al.Blocks {
		fixLight(al.Blocks[i].Light0)
		fixLight(al.Blocks[i].Light1)
		fixLight(al.Blocks[i].Light2)
		fixLight(al.Blocks[i].Light3)
	}
}

func fixLight(p *Properties) {
	if p == nil {
		return
	}
	p.Direction.X = nds.Clamp(p.Direction.X, nds.Fixed16NegOne, nds.Fixed16One)
	p.Direction.Y = nds.Clamp(p.Direction.Y, nds.Fixed16NegOne, nds.Fixed16One)
	p.Direction.Z = nds.Clamp(p.Direction.Z, nds.Fixed16NegOne, nds.Fixed16One)
}
