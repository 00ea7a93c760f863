package bdhc

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseHeaderWorkedExample(t *testing.T) {
	buf := &bytes.Buffer{}
	buf.WriteString("BDHC")
	buf.Write([]byte{
		0x02, 0x00, // points
		0x01, 0x00, // normals
		0x01, 0x00, // constants
		0x01, 0x00, // plates
		0x01, 0x00, // strips
		0x01, 0x00, // access list
	})

	// Minimal bodies matching the declared counts: 2 points (8 bytes each),
	// 1 normal (12 bytes), 1 constant (4 bytes), 1 plate (8 bytes),
	// 1 strip (8 bytes), 1 access list entry (2 bytes).
	buf.Write(make([]byte, 2*8+12+4+8+8+2))

	got, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(got.Points) != 2 {
		t.Errorf("len(Points) = %d, want 2", len(got.Points))
	}
	if len(got.Normals) != 1 {
		t.Errorf("len(Normals) = %d, want 1", len(got.Normals))
	}
	if len(got.Constants) != 1 {
		t.Errorf("len(Constants) = %d, want 1", len(got.Constants))
	}
	if len(got.Plates) != 1 {
		t.Errorf("len(Plates) = %d, want 1", len(got.Plates))
	}
	if len(got.Strips) != 1 {
		t.Errorf("len(Strips) = %d, want 1", len(got.Strips))
	}
	if len(got.AccessList) != 1 {
		t.Errorf("len(AccessList) = %d, want 1", len(got.AccessList))
	}
}

func TestParseInvalidMagic(t *testing.T) {
	_, err := Parse([]byte("XXXX\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"))
	if !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("Parse error = %v, want ErrInvalidMagic", err)
	}
}

func TestParsePlateFieldsAndFixedPointValues(t *testing.T) {
	buf := &bytes.Buffer{}
	buf.WriteString("BDHC")
	buf.Write([]byte{
		0x01, 0x00, // points
		0x00, 0x00, // normals
		0x00, 0x00, // constants
		0x01, 0x00, // plates
		0x00, 0x00, // strips
		0x00, 0x00, // access list
	})

	// One point at raw (4096, -4096) == (1.0, -1.0) in Q19.12.
	buf.Write([]byte{0x00, 0x10, 0x00, 0x00, 0x00, 0xF0, 0xFF, 0xFF})
	// One plate referencing point 0 for both indices.
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})

	got, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if x := got.Points[0].X.Float64(); x != 1.0 {
		t.Errorf("Points[0].X = %v, want 1.0", x)
	}
	if z := got.Points[0].Z.Float64(); z != -1.0 {
		t.Errorf("Points[0].Z = %v, want -1.0", z)
	}
	if got.Plates[0].FirstPointIndex != 0 || got.Plates[0].SecondPointIndex != 0 {
		t.Errorf("Plates[0] = %+v, want both indices 0", got.Plates[0])
	}
}

func TestParseTruncatedBody(t *testing.T) {
	buf := &bytes.Buffer{}
	buf.WriteString("BDHC")
	buf.Write([]byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	})
	// Declares 1 point (8 bytes) but supplies none.

	if _, err := Parse(buf.Bytes()); err == nil {
		t.Error("Parse: expected error for a body shorter than the declared section sizes")
	}
}
