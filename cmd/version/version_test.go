/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bennypowers.dev/dsexport/internal/version"
)

func TestRun(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		Cmd.SetOut(&buf)
		if err := Cmd.Flags().Set("format", "text"); err != nil {
			t.Fatal(err)
		}
		if err := run(Cmd, nil); err != nil {
			t.Fatalf("run() error = %v", err)
		}
		if !strings.HasPrefix(buf.String(), "dsexport ") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		Cmd.SetOut(&buf)
		if err := Cmd.Flags().Set("format", "json"); err != nil {
			t.Fatal(err)
		}
		if err := run(Cmd, nil); err != nil {
			t.Fatalf("run() error = %v", err)
		}
		var info version.BuildInfo
		if err := json.Unmarshal(buf.Bytes(), &info); err != nil {
			t.Fatalf("invalid JSON %q: %v", buf.String(), err)
		}
		if info.Version != version.Get() {
			t.Errorf("Version = %q, want %q", info.Version, version.Get())
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := Cmd.Flags().Set("format", "xml"); err != nil {
			t.Fatal(err)
		}
		if err := run(Cmd, nil); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
