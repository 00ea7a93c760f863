// Package diag provides developer-facing diagnostics for a loaded bundle,
// independent of the relational projection it eventually feeds.
package diag

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/Kuruyia/pokeplat-tools/internal/loader"
)

// Digest is a deterministic hash of a Resources bundle, suitable for
// comparing two loads of the same inputs (an export-idempotence check)
// without comparing whole files.
type Digest string

// BundleDigest hashes the bundle in a fixed field order and in the order of
// each record slice, so reordering records changes the digest. It covers the
// record counts of every component, the four fields of each area data
// record, each area light block's end time and each map matrix's height and
// width. Other decoded values (prop ids, animation ids, material/shape ids,
// matrix cells, terrain attributes, prop placements, BDHC geometry) are
// represented only by their counts.
func BundleDigest(r *loader.Resources) (Digest, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("diag: init blake2b: %w", err)
	}

	writeUint32 := func(v uint32) {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], v)
		h.Write(buf[:])
	}

	writeUint32(uint32(len(r.AreaData)))
	for _, a := range r.AreaData {
		writeUint32(uint32(a.MapPropArchivesID))
		writeUint32(uint32(a.MapTextureArchiveID))
		writeUint32(uint32(a.AreaLightArchiveID))
		writeUint32(uint32(a.Dummy))
	}

	writeUint32(uint32(len(r.AreaLights)))
	for _, al := range r.AreaLights {
		writeUint32(uint32(len(al.Blocks)))
		for _, b := range al.Blocks {
			writeUint32(b.EndTime)
		}
	}

	writeUint32(uint32(len(r.AreaMapProps)))
	for _, amp := range r.AreaMapProps {
		writeUint32(uint32(len(amp.MapPropsIDs)))
	}

	writeUint32(uint32(len(r.MapPropAnimationLists)))
	writeUint32(uint32(len(r.MapPropMaterialShapes)))

	writeUint32(uint32(len(r.MapMatrices)))
	for _, mm := range r.MapMatrices {
		writeUint32(uint32(mm.Height))
		writeUint32(uint32(mm.Width))
	}

	writeUint32(uint32(len(r.LandData)))
	for _, ld := range r.LandData {
		writeUint32(uint32(len(ld.TerrainAttributes)))
		writeUint32(uint32(len(ld.MapProps)))
		writeUint32(uint32(len(ld.Bdhc.Points)))
	}

	return Digest(hex.EncodeToString(h.Sum(nil))), nil
}
