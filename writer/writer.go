// Package writer formats generated units and writes them to the output
// directory.
package writer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/psanford/memfs"
	"golang.org/x/tools/imports"

	"github.com/Yamashou/gqlbuilder/assembler"
)

var importsOptions = &imports.Options{
	Comments:  true,
	TabIndent: true,
	TabWidth:  8,
}

// Format runs goimports over a unit. Imports the unit does not use are
// dropped.
func Format(u assembler.Unit) ([]byte, error) {
	src, err := imports.Process(u.Name, []byte(u.Content), importsOptions)
	if err != nil {
		return nil, fmt.Errorf("go imports %s: %w", u.Name, err)
	}

	return src, nil
}

// Stage formats every unit into an in-memory file system.
func Stage(units []assembler.Unit) (*memfs.FS, error) {
	mfs := memfs.New()
	for _, u := range units {
		src, err := Format(u)
		if err != nil {
			return nil, err
		}
		if dir := filepath.Dir(u.Name); dir != "." {
			if err := mfs.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := mfs.WriteFile(u.Name, src, 0o600); err != nil {
			return nil, fmt.Errorf("stage %s: %w", u.Name, err)
		}
	}

	return mfs, nil
}

// Write formats units and writes them to outputDir.
func Write(ctx context.Context, units []assembler.Unit, outputDir string) error {
	mfs, err := Stage(units)
	if err != nil {
		return err
	}

	return Overlay(ctx, mfs, outputDir)
}

// Overlay copies every file of overlay into outputDir. Files whose content
// is already up to date are not rewritten.
func Overlay(ctx context.Context, overlay fs.FS, outputDir string) error {
	return fs.WalkDir(overlay, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, err := os.Stat(filepath.Join(outputDir, path)); err == nil {
				return nil
			}
			slog.DebugContext(ctx, "creating directory", "path", filepath.Join(outputDir, path))
			return os.MkdirAll(filepath.Join(outputDir, path), 0o755)
		}

		newContent, err := fs.ReadFile(overlay, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		outPath := filepath.Join(outputDir, path)
		if oldContent, err := os.ReadFile(outPath); err == nil && string(oldContent) == string(newContent) {
			slog.InfoContext(ctx, "writing", "path", outPath, "skipped", true)
			return nil
		}

		slog.InfoContext(ctx, "writing", "path", outPath)
		if err := os.WriteFile(outPath, newContent, 0o600); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}

		return nil
	})
}
