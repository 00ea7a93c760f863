package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// buildNARC assembles the same literal two-member archive used to exercise
// the narc reader: a FATB chunk declaring two 4-byte files, an empty FNTB
// chunk, and a FIMG chunk with 8 bytes of payload.
func buildNARC(t *testing.T) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	buf.WriteString("NARC")
	buf.Write([]byte{0xFF, 0xFE})
	buf.Write([]byte{0x00, 0x01})
	buf.Write([]byte{0x40, 0x00, 0x00, 0x00})
	buf.Write([]byte{0x10, 0x00})
	buf.Write([]byte{0x03, 0x00})

	buf.WriteString("BTAF")
	buf.Write([]byte{0x1C, 0x00, 0x00, 0x00})
	buf.Write([]byte{0x02, 0x00, 0x00, 0x00})
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00})
	buf.Write([]byte{0x04, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00})

	buf.WriteString("BTNF")
	buf.Write([]byte{0x08, 0x00, 0x00, 0x00})

	buf.WriteString("GMIF")
	buf.Write([]byte{0x10, 0x00, 0x00, 0x00})
	buf.Write([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0xCA, 0xFE, 0xBA, 0xBE})

	out := buf.Bytes()
	size := uint32(len(out))
	out[8] = byte(size)
	out[9] = byte(size >> 8)
	out[10] = byte(size >> 16)
	out[11] = byte(size >> 24)

	return out
}

func TestLoadNarcMembers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "members.narc")
	if err := os.WriteFile(path, buildNARC(t), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := loadNarcMembers(path, "test archive", func(b []byte) ([]byte, error) {
		return append([]byte(nil), b...), nil
	})
	if err != nil {
		t.Fatalf("loadNarcMembers: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if !bytes.Equal(out[0], []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("out[0] = % X, want DE AD BE EF", out[0])
	}
	if !bytes.Equal(out[1], []byte{0xCA, 0xFE, 0xBA, 0xBE}) {
		t.Errorf("out[1] = % X, want CA FE BA BE", out[1])
	}
}

func TestLoadNarcMembersDecodeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "members.narc")
	if err := os.WriteFile(path, buildNARC(t), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	wantErr := os.ErrInvalid
	_, err := loadNarcMembers(path, "test archive", func(b []byte) ([]byte, error) {
		return nil, wantErr
	})
	if err == nil {
		t.Fatal("loadNarcMembers: expected decode error to propagate")
	}
}
