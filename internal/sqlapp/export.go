package sqlapp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/Kuruyia/pokeplat-tools/internal/loader"
	"github.com/Kuruyia/pokeplat-tools/internal/plat/mapheader"
)

// Export deletes any existing file at path (ignoring not-found, per
// spec.md's export semantics), opens a fresh file-backed database, populates
// it from res, and prints the absolute output path. When compress is true,
// a zstd-compressed copy is additionally written alongside it.
func Export(ctx context.Context, path string, res *loader.Resources, headers mapheader.Dictionary, compress bool) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("sqlapp: remove existing %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("sqlapp: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := Populate(ctx, db, res, headers); err != nil {
		db.Close()
		return err
	}

	if err := db.Close(); err != nil {
		return fmt.Errorf("sqlapp: close %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("sqlapp: resolve absolute path for %s: %w", path, err)
	}
	log.Printf("exported database to %s", abs)

	if compress {
		if err := compressFile(path, path+".zst"); err != nil {
			return fmt.Errorf("sqlapp: compress export: %w", err)
		}
		log.Printf("wrote compressed copy to %s", abs+".zst")
	}

	return nil
}

func compressFile(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", dstPath, err)
	}
	defer dst.Close()

	enc, err := zstd.NewWriter(dst)
	if err != nil {
		return fmt.Errorf("init zstd writer: %w", err)
	}

	if _, err := io.Copy(enc, src); err != nil {
		enc.Close()
		return fmt.Errorf("compress: %w", err)
	}

	return enc.Close()
}
