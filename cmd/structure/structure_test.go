/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package structure

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"bennypowers.dev/dsexport/cmd/settings"
	"bennypowers.dev/dsexport/config"
	"bennypowers.dev/dsexport/internal/logger"
	"bennypowers.dev/dsexport/provider/snapshot"
	"bennypowers.dev/dsexport/testutil"
)

func TestRunStructure(t *testing.T) {
	logger.SetOutput(io.Discard)
	mfs := testutil.NewFixtureFS(t, "fixtures/snapshot/basic", "/snap")

	cfg := config.Default()
	cfg.IncludePlatform = true
	s := &settings.Settings{Root: "/snap", Config: cfg}

	sources := config.Sources{
		Tokens: config.Patterns{"tokens.json"},
		Groups: config.Patterns{"group*.json"},
		Brands: config.Patterns{"brands.yaml"},
	}

	var out, stats bytes.Buffer
	if err := runStructure(context.Background(), mfs, s, sources, &out, &stats); err != nil {
		t.Fatalf("runStructure() error = %v", err)
	}

	expected := testutil.LoadFixtureFile(t, "fixtures/snapshot/basic/expected.json")
	if out.String() != string(expected)+"\n" {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	want := "tokens: 5\nstructured: 4\ndropped: 1\ngroups: 2\n"
	if stats.String() != want {
		t.Errorf("stats = %q, want %q", stats.String(), want)
	}
}

func TestRunStructure_RequiresSources(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/snapshot/basic", "/snap")
	s := &settings.Settings{Root: "/snap", Config: config.Default()}

	err := runStructure(context.Background(), mfs, s, config.Sources{Tokens: config.Patterns{"tokens.json"}}, io.Discard, nil)
	if !errors.Is(err, snapshot.ErrNoSources) {
		t.Errorf("expected ErrNoSources, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "group sources") {
		t.Errorf("unexpected message %q", err.Error())
	}
}
