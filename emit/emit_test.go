/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"testing"

	"bennypowers.dev/dsexport/export"
	"bennypowers.dev/dsexport/internal/mapfs"
)

func TestWriteFiles(t *testing.T) {
	mfs := mapfs.New()

	written, err := WriteFiles(mfs, "/out", []export.OutputFile{{
		RelativePath: "./",
		FileName:     "test.md",
		Content:      []byte(`{"Color":[]}`),
	}})
	if err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}

	if len(written) != 1 || written[0] != "/out/test.md" {
		t.Fatalf("written = %v, want [/out/test.md]", written)
	}

	content, err := mfs.ReadFile("/out/test.md")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != `{"Color":[]}` {
		t.Errorf("content = %q", content)
	}
}

func TestWriteFiles_Nested(t *testing.T) {
	mfs := mapfs.New()

	written, err := WriteFiles(mfs, "/out", []export.OutputFile{{
		RelativePath: "tokens/css",
		FileName:     "test.md",
		Content:      []byte("{}"),
	}})
	if err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}
	if written[0] != "/out/tokens/css/test.md" {
		t.Errorf("written = %v", written)
	}
	if !mfs.Exists("/out/tokens/css") {
		t.Error("expected output directory to exist")
	}
}

func TestWriteFiles_Rejects(t *testing.T) {
	tests := []struct {
		name string
		file export.OutputFile
	}{
		{"escapes output dir", export.OutputFile{RelativePath: "../..", FileName: "x.md"}},
		{"no file name", export.OutputFile{RelativePath: "./"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := WriteFiles(mapfs.New(), "/out", []export.OutputFile{tt.file}); err == nil {
				t.Error("expected error")
			}
		})
	}
}
