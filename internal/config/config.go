// Package config resolves the set of asset file paths the pipeline needs to
// read, mirroring the mutually-exclusive "explicit paths" vs "repo root"
// input modes of the original tool's command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Repo-relative default locations of each input file, rooted at a checkout
// of the game's asset repository.
const (
	areaDataRelPath         = "build/res/prebuilt/fielddata/areadata/area_data.narc"
	areaLightRelPath        = "build/res/prebuilt/data/arealight.narc"
	areaBuildRelPath        = "build/res/prebuilt/fielddata/areadata/area_build_model/area_build.narc"
	bmAnimeListRelPath      = "build/res/prebuilt/arc/bm_anime_list.narc"
	buildModelMatshpRelPath = "build/res/prebuilt/fielddata/build_model/build_model_matshp.dat"
	mapMatrixRelPath        = "build/field/maps/matrices/map_matrix.narc"
	landDataRelPath         = "build/field/maps/data/land_data.narc"
)

// NarcPaths is the resolved set of every input file the loader needs.
type NarcPaths struct {
	AreaDataNarcPath         string `yaml:"area_data_narc_path"`
	AreaLightNarcPath        string `yaml:"area_light_narc_path"`
	AreaBuildNarcPath        string `yaml:"area_build_narc_path"`
	BmAnimeListNarcPath      string `yaml:"bm_anime_list_narc_path"`
	BuildModelMatshpDatPath  string `yaml:"build_model_matshp_dat_path"`
	MapMatrixNarcPath        string `yaml:"map_matrix_narc_path"`
	LandDataNarcPath         string `yaml:"land_data_narc_path"`
}

// ErrIncompleteNarcPaths is returned when explicit paths are given but one
// of the seven required fields is empty.
var ErrIncompleteNarcPaths = errors.New("config: all seven narc paths must be specified together")

// FromRepoRoot derives NarcPaths from the fixed relative layout of a checkout
// of the game's asset repository.
func FromRepoRoot(root string) NarcPaths {
	return NarcPaths{
		AreaDataNarcPath:        filepath.Join(root, areaDataRelPath),
		AreaLightNarcPath:       filepath.Join(root, areaLightRelPath),
		AreaBuildNarcPath:       filepath.Join(root, areaBuildRelPath),
		BmAnimeListNarcPath:     filepath.Join(root, bmAnimeListRelPath),
		BuildModelMatshpDatPath: filepath.Join(root, buildModelMatshpRelPath),
		MapMatrixNarcPath:       filepath.Join(root, mapMatrixRelPath),
		LandDataNarcPath:        filepath.Join(root, landDataRelPath),
	}
}

// Validate reports ErrIncompleteNarcPaths if any field is empty.
func (p NarcPaths) Validate() error {
	fields := []string{
		p.AreaDataNarcPath, p.AreaLightNarcPath, p.AreaBuildNarcPath,
		p.BmAnimeListNarcPath, p.BuildModelMatshpDatPath, p.MapMatrixNarcPath,
		p.LandDataNarcPath,
	}
	for _, f := range fields {
		if f == "" {
			return ErrIncompleteNarcPaths
		}
	}
	return nil
}

// LoadFile reads a NarcPaths from a YAML configuration file.
func LoadFile(path string) (NarcPaths, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NarcPaths{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var p NarcPaths
	if err := yaml.Unmarshal(data, &p); err != nil {
		return NarcPaths{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return NarcPaths{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return p, nil
}
