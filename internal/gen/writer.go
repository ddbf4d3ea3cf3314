package gen

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"daisy-generator/internal/diagnostic"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

//go:embed all:static
var staticFS embed.FS

// StaticAssets returns the asset tree copied verbatim into every output directory.
func StaticAssets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return sub
}

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return diagnostic.New(diagnostic.KindIO, "create output directory", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return diagnostic.New(diagnostic.KindIO, "write "+file.Filename, err)
		}
	}

	return nil
}

// CopyTree copies src into dst, creating dst. dst must not contain any of src's files.
func CopyTree(dst string, src fs.FS) error {
	if err := os.CopyFS(dst, src); err != nil {
		return diagnostic.New(diagnostic.KindIO, "copy into "+dst, err)
	}

	return nil
}

// CopyDir copies the directory tree at src into dst.
func CopyDir(dst, src string) error {
	info, err := os.Stat(src)
	if err != nil {
		return diagnostic.New(diagnostic.KindIO, "copy "+src, err)
	}

	if !info.IsDir() {
		return diagnostic.New(diagnostic.KindIO, "copy "+src, fmt.Errorf("not a directory"))
	}

	return CopyTree(dst, os.DirFS(src))
}

// ReplaceDir removes dir and everything below it. A missing dir is not an error.
func ReplaceDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return diagnostic.New(diagnostic.KindIO, "remove "+dir, err)
	}

	return nil
}
