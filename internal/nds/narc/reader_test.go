package narc

import (
	"bytes"
	"errors"
	"testing"
)

// buildNARC assembles a 68-byte two-member archive: header, a FATB chunk
// declaring two 4-byte files, an empty FNTB chunk, and a FIMG chunk with 8
// bytes of payload.
func buildNARC(t *testing.T) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	buf.WriteString("NARC")
	buf.Write([]byte{0xFF, 0xFE}) // BOM: little endian
	buf.Write([]byte{0x00, 0x01}) // version 0x0100
	buf.Write([]byte{0x40, 0x00, 0x00, 0x00}) // file size 0x40
	buf.Write([]byte{0x10, 0x00})             // header size 0x10
	buf.Write([]byte{0x03, 0x00})             // chunk count 3

	// BTAF: 2 files, (0,4) and (4,8)
	buf.WriteString("BTAF")
	buf.Write([]byte{0x1C, 0x00, 0x00, 0x00}) // chunk size: 8 (header) + 4 (count) + 16 (2 pairs) = 28
	buf.Write([]byte{0x02, 0x00, 0x00, 0x00})
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00})
	buf.Write([]byte{0x04, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00})

	// BTNF: empty body
	buf.WriteString("BTNF")
	buf.Write([]byte{0x08, 0x00, 0x00, 0x00})

	// GMIF: 8 bytes of payload
	buf.WriteString("GMIF")
	buf.Write([]byte{0x10, 0x00, 0x00, 0x00})
	buf.Write([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0xCA, 0xFE, 0xBA, 0xBE})

	out := buf.Bytes()
	// Patch the declared file size to match this buffer's actual length;
	// the reader does not cross-check it, but a realistic fixture should.
	size := uint32(len(out))
	out[8] = byte(size)
	out[9] = byte(size >> 8)
	out[10] = byte(size >> 16)
	out[11] = byte(size >> 24)

	return out
}

func TestReaderRoundTrip(t *testing.T) {
	data := buildNARC(t)
	r, err := NewReader(bytes.NewReader(data), int64(len(data)), Flags{})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	first, err := r.ReadAll(0)
	if err != nil {
		t.Fatalf("ReadAll(0): %v", err)
	}
	if !bytes.Equal(first, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("ReadAll(0) = % X, want DE AD BE EF", first)
	}

	second, err := r.ReadAll(1)
	if err != nil {
		t.Fatalf("ReadAll(1): %v", err)
	}
	if !bytes.Equal(second, []byte{0xCA, 0xFE, 0xBA, 0xBE}) {
		t.Errorf("ReadAll(1) = % X, want CA FE BA BE", second)
	}

	// Two reads of the same member return identical bytes.
	again, err := r.ReadAll(0)
	if err != nil {
		t.Fatalf("ReadAll(0) second call: %v", err)
	}
	if !bytes.Equal(first, again) {
		t.Errorf("ReadAll(0) not stable across calls")
	}

	if _, err := r.ReadAll(2); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("ReadAll(2) error = %v, want ErrMemberNotFound", err)
	}
}

func TestReaderInvalidMagic(t *testing.T) {
	data := buildNARC(t)
	data[0] = 'X'
	_, err := NewReader(bytes.NewReader(data), int64(len(data)), Flags{})
	if !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("NewReader error = %v, want ErrInvalidMagic", err)
	}
}

func TestReaderInvalidBOM(t *testing.T) {
	data := buildNARC(t)
	data[4] = 0x12
	data[5] = 0x34
	_, err := NewReader(bytes.NewReader(data), int64(len(data)), Flags{})
	if !errors.Is(err, ErrInvalidBOM) {
		t.Errorf("NewReader error = %v, want ErrInvalidBOM", err)
	}
}

func TestReaderSkipMagicCheckBypassesInvalidMagic(t *testing.T) {
	data := buildNARC(t)
	data[0] = 'X'
	r, err := NewReader(bytes.NewReader(data), int64(len(data)), Flags{SkipMagicCheck: true})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestReaderSkipBOMCheckBypassesInvalidBOM(t *testing.T) {
	data := buildNARC(t)
	data[4] = 0x12
	data[5] = 0x34
	r, err := NewReader(bytes.NewReader(data), int64(len(data)), Flags{SkipBOMCheck: true})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}
