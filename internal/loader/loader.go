// Package loader reads the seven input files into their decoded in-memory
// forms, ready to be projected into SQL tables.
package loader

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/Kuruyia/pokeplat-tools/internal/config"
	"github.com/Kuruyia/pokeplat-tools/internal/nds/narc"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/areadata"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/areamapprops"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/arealight"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/landdata"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/mapmatrix"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/mappropanimlist"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/matshapes"
)

// Resources holds every decoded record set the projection layer needs.
type Resources struct {
	AreaData               []areadata.AreaData
	AreaLights             []arealight.AreaLight
	AreaMapProps           []areamapprops.AreaMapProps
	MapPropAnimationLists  []mappropanimlist.MapPropAnimationList
	MapPropMaterialShapes  []*matshapes.MaterialShapes
	MapMatrices            []mapmatrix.MapMatrix
	LandData               []landdata.LandData
}

// Load reads and decodes every input file named by paths, logging progress
// the way the teacher's asset tooling does.
func Load(paths config.NarcPaths) (*Resources, error) {
	areaData, err := loadNarcMembers(paths.AreaDataNarcPath, "area_data.narc", func(b []byte) (areadata.AreaData, error) {
		if len(b) < areadata.Size {
			return areadata.AreaData{}, fmt.Errorf("area data member too small: %d bytes", len(b))
		}
		return areadata.Parse(b), nil
	})
	if err != nil {
		return nil, err
	}

	areaLights, err := loadNarcMembers(paths.AreaLightNarcPath, "arealight.narc", arealight.Parse)
	if err != nil {
		return nil, err
	}

	areaMapProps, err := loadNarcMembers(paths.AreaBuildNarcPath, "area_build.narc", areamapprops.Parse)
	if err != nil {
		return nil, err
	}

	animLists, err := loadNarcMembers(paths.BmAnimeListNarcPath, "bm_anime_list.narc", mappropanimlist.Parse)
	if err != nil {
		return nil, err
	}

	matShapesData, err := os.ReadFile(paths.BuildModelMatshpDatPath)
	if err != nil {
		return nil, fmt.Errorf("loader: read build_model_matshp.dat: %w", err)
	}
	log.Printf("reading build_model_matshp.dat at: %s (%s)", paths.BuildModelMatshpDatPath, humanize.Bytes(uint64(len(matShapesData))))

	matShapes, err := matshapes.Parse(matShapesData)
	if err != nil {
		return nil, fmt.Errorf("loader: parse build_model_matshp.dat: %w", err)
	}
	log.Printf("read %d map prop material & shapes entries", len(matShapes))

	mapMatrices, err := loadNarcMembers(paths.MapMatrixNarcPath, "map_matrix.narc", mapmatrix.Parse)
	if err != nil {
		return nil, err
	}

	landData, err := loadNarcMembers(paths.LandDataNarcPath, "land_data.narc", landdata.Parse)
	if err != nil {
		return nil, err
	}

	return &Resources{
		AreaData:              areaData,
		AreaLights:            areaLights,
		AreaMapProps:          areaMapProps,
		MapPropAnimationLists: animLists,
		MapPropMaterialShapes: matShapes,
		MapMatrices:           mapMatrices,
		LandData:              landData,
	}, nil
}

// loadNarcMembers opens path as a NARC container, decodes every member with
// decode, and returns them in container order.
func loadNarcMembers[T any](path, label string, decode func([]byte) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", label, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("loader: stat %s: %w", label, err)
	}

	log.Printf("reading %s at: %s (%s)", label, path, humanize.Bytes(uint64(info.Size())))

	r, err := narc.NewReader(f, info.Size(), narc.Flags{})
	if err != nil {
		return nil, fmt.Errorf("loader: parse %s container: %w", label, err)
	}

	out := make([]T, 0, r.Len())
	for i := 0; i < r.Len(); i++ {
		raw, err := r.ReadAll(i)
		if err != nil {
			return nil, fmt.Errorf("loader: read %s member %d: %w", label, i, err)
		}

		decoded, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("loader: decode %s member %d: %w", label, i, err)
		}

		out = append(out, decoded)
	}

	log.Printf("read %d %s entries", len(out), label)
	return out, nil
}
