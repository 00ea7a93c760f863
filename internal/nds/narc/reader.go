// Package narc implements a read-only decoder for the Nitro ARChive
// container format used to bundle the Pokémon Platinum asset files.
package narc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ByteOrder identifies the byte order a NARC file declares via its BOM.
type ByteOrder int

const (
	// LittleEndian is declared by a BOM of 0xFFFE.
	LittleEndian ByteOrder = iota
	// BigEndian is declared by a BOM of 0xFEFF.
	BigEndian
)

// byteOrderFromBOM maps a raw BOM field to a ByteOrder.
func byteOrderFromBOM(bom uint16) (ByteOrder, error) {
	switch bom {
	case 0xFFFE:
		return LittleEndian, nil
	case 0xFEFF:
		return BigEndian, nil
	default:
		return 0, fmt.Errorf("%w: 0x%04X", ErrInvalidBOM, bom)
	}
}

const (
	magicNARC = "NARC"
	magicBTAF = "BTAF" // file allocation table chunk
	magicBTNF = "BTNF" // file name table chunk
	magicGMIF = "GMIF" // file image chunk

	genericHeaderSize = 16
	chunkHeaderSize   = 8
)

// Sentinel errors surfaced by the reader; corresponds to the decoder's error
// taxonomy for container-level failures.
var (
	ErrInvalidMagic      = errors.New("narc: invalid magic")
	ErrInvalidBOM        = errors.New("narc: invalid byte order mark")
	ErrMissingFATChunk    = errors.New("narc: missing file allocation table chunk")
	ErrMissingImageChunk  = errors.New("narc: missing file image chunk")
	ErrMemberNotFound     = errors.New("narc: member not found")
	ErrMemberTooLarge     = errors.New("narc: member too large to load into memory")
)

// fatEntry is a single (start, end) byte-offset pair relative to the start
// of the file image chunk's data region.
type fatEntry struct {
	start uint32
	end   uint32
}

// Reader decodes a NARC container lazily: the allocation table is parsed up
// front, but member payloads are only read from the backing source on
// demand via Open.
type Reader struct {
	ra        io.ReaderAt
	order     ByteOrder
	fat       []fatEntry
	imageBase int64 // absolute offset of the FIMG chunk's data region
}

// Flags controls which of the generic-header validity checks NewReader
// performs, mirroring the original decoder's NarcReaderFlags: some callers
// (e.g. archives repacked by third-party tools) carry a header that fails
// one of these checks despite being otherwise well-formed.
type Flags struct {
	// SkipMagicCheck bypasses the "NARC" magic number check.
	SkipMagicCheck bool
	// SkipBOMCheck bypasses the byte-order-mark validity check. When set,
	// a BOM that matches neither known value is treated as LittleEndian.
	SkipBOMCheck bool
}

// NewReader parses the header and chunk table of a NARC container backed by
// ra, which must expose size bytes of content. It does not read any member
// file data. flags controls which header checks are enforced.
func NewReader(ra io.ReaderAt, size int64, flags Flags) (*Reader, error) {
	if size < genericHeaderSize {
		return nil, fmt.Errorf("narc: %w: container too small", io.ErrUnexpectedEOF)
	}

	header := make([]byte, genericHeaderSize)
	if _, err := ra.ReadAt(header, 0); err != nil {
		return nil, fmt.Errorf("narc: read header: %w", err)
	}

	if !flags.SkipMagicCheck && string(header[0:4]) != magicNARC {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMagic, header[0:4])
	}

	var order ByteOrder
	if flags.SkipBOMCheck {
		bom := binary.LittleEndian.Uint16(header[4:6])
		if bom == 0xFEFF {
			order = BigEndian
		} else {
			order = LittleEndian
		}
	} else {
		var err error
		order, err = byteOrderFromBOM(binary.LittleEndian.Uint16(header[4:6]))
		if err != nil {
			return nil, err
		}
	}

	numBlocks := binary.LittleEndian.Uint16(header[14:16])

	r := &Reader{ra: ra, order: order}

	pos := int64(genericHeaderSize)
	var sawFAT, sawImage bool

	for i := uint16(0); i < numBlocks; i++ {
		chunkHeader := make([]byte, chunkHeaderSize)
		if _, err := ra.ReadAt(chunkHeader, pos); err != nil {
			return nil, fmt.Errorf("narc: read chunk header at %d: %w", pos, err)
		}

		chunkMagic := string(chunkHeader[0:4])
		chunkSize := binary.LittleEndian.Uint32(chunkHeader[4:8])

		switch chunkMagic {
		case magicBTAF:
			if err := r.parseFAT(pos+chunkHeaderSize, chunkSize-chunkHeaderSize); err != nil {
				return nil, err
			}
			sawFAT = true
		case magicGMIF:
			r.imageBase = pos + chunkHeaderSize
			sawImage = true
		case magicBTNF:
			// The filename table is not needed for indexed member access;
			// it is skipped like any other chunk below.
		}

		// Chunks are always skipped by their declared size, regardless of
		// how much of it was actually consumed.
		pos += int64(chunkSize)
	}

	if !sawFAT {
		return nil, ErrMissingFATChunk
	}
	if !sawImage {
		return nil, ErrMissingImageChunk
	}

	return r, nil
}

// parseFAT decodes the file allocation table chunk body, which starts with
// a uint32 file count followed by that many (start, end) uint32 pairs.
func (r *Reader) parseFAT(offset int64, size uint32) error {
	body := make([]byte, size)
	if _, err := r.ra.ReadAt(body, offset); err != nil {
		return fmt.Errorf("narc: read file allocation table: %w", err)
	}

	if len(body) < 4 {
		return fmt.Errorf("%w: file allocation table too small", io.ErrUnexpectedEOF)
	}

	numFiles := binary.LittleEndian.Uint32(body[0:4])
	r.fat = make([]fatEntry, 0, numFiles)

	cursor := 4
	for i := uint32(0); i < numFiles; i++ {
		if cursor+8 > len(body) {
			return fmt.Errorf("%w: file allocation table truncated", io.ErrUnexpectedEOF)
		}

		r.fat = append(r.fat, fatEntry{
			start: binary.LittleEndian.Uint32(body[cursor : cursor+4]),
			end:   binary.LittleEndian.Uint32(body[cursor+4 : cursor+8]),
		})
		cursor += 8
	}

	return nil
}

// Len returns the number of members in the container.
func (r *Reader) Len() int {
	return len(r.fat)
}

// Open returns a reader over the raw bytes of the member at index. The
// returned ReadCloser reads from an in-memory copy of the member; closing
// it is always safe and never itself fails.
func (r *Reader) Open(index int) (io.ReadCloser, error) {
	if index < 0 || index >= len(r.fat) {
		return nil, fmt.Errorf("%w: index %d", ErrMemberNotFound, index)
	}

	entry := r.fat[index]
	if entry.end < entry.start {
		return nil, fmt.Errorf("%w: member %d has end before start", ErrMemberTooLarge, index)
	}

	length := entry.end - entry.start
	buf := make([]byte, length)
	if _, err := r.ra.ReadAt(buf, r.imageBase+int64(entry.start)); err != nil {
		return nil, fmt.Errorf("narc: read member %d: %w", index, err)
	}

	return io.NopCloser(bytes.NewReader(buf)), nil
}

// ReadAll is a convenience wrapper around Open that reads the entire member
// into memory and closes the underlying reader.
func (r *Reader) ReadAll(index int) ([]byte, error) {
	rc, err := r.Open(index)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// Files lazily iterates every member in the container, invoking fn with the
// member index and a function to open it on demand. Iteration stops at the
// first error returned by fn.
func (r *Reader) Files(fn func(index int, open func() (io.ReadCloser, error)) error) error {
	for i := range r.fat {
		idx := i
		open := func() (io.ReadCloser, error) { return r.Open(idx) }
		if err := fn(idx, open); err != nil {
			return err
		}
	}
	return nil
}
