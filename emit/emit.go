/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package emit writes export output files to disk.
package emit

import (
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/dsexport/export"
	"bennypowers.dev/dsexport/fs"
)

// WriteFiles writes each file under outDir and returns the written paths.
// A file's RelativePath may not escape outDir.
func WriteFiles(filesystem fs.FileSystem, outDir string, files []export.OutputFile) ([]string, error) {
	written := make([]string, 0, len(files))

	for _, f := range files {
		if f.FileName == "" {
			return written, fmt.Errorf("output file has no name")
		}

		rel := filepath.Clean(filepath.Join(f.RelativePath, f.FileName))
		if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return written, fmt.Errorf("output path %q escapes output directory", rel)
		}

		target := filepath.Join(outDir, rel)
		if err := filesystem.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", target, err)
		}
		if err := filesystem.WriteFile(target, f.Content, 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", target, err)
		}
		written = append(written, target)
	}

	return written, nil
}
