/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/dsexport/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.DesignSystemID != "ds-123" || cfg.VersionID != "v-456" {
		t.Errorf("unexpected version ref %+v", cfg.VersionRef())
	}
	if cfg.APIURL != "https://design.example.com/api/v2" {
		t.Errorf("expected apiUrl, got %q", cfg.APIURL)
	}
	if !cfg.Pretty || !cfg.IncludePlatform {
		t.Errorf("expected pretty and includePlatform, got %+v", cfg)
	}
	if cfg.RetryMax != 5 {
		t.Errorf("expected retryMax 5, got %d", cfg.RetryMax)
	}

	timeout, err := cfg.FetchTimeout()
	if err != nil || timeout != 10*time.Second {
		t.Errorf("FetchTimeout() = %v, %v; want 10s", timeout, err)
	}

	if !reflect.DeepEqual([]string(cfg.Sources.Tokens), []string{"snapshots/tokens.json"}) {
		t.Errorf("unexpected token sources %v", cfg.Sources.Tokens)
	}
	if !reflect.DeepEqual([]string(cfg.Sources.Groups), []string{"snapshots/groups.json"}) {
		t.Errorf("unexpected group sources %v", cfg.Sources.Groups)
	}

	opts := cfg.ExportOptions()
	if !opts.Serialize.Pretty || !opts.Structure.IncludePlatform {
		t.Errorf("ExportOptions() = %+v", opts)
	}

	outDir, err := cfg.ResolveOutputDir("/project")
	if err != nil || outDir != "/project/dist/tokens" {
		t.Errorf("ResolveOutputDir() = %q, %v", outDir, err)
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/jsonc", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DesignSystemID != "ds-json" {
		t.Errorf("expected designSystemId ds-json, got %q", cfg.DesignSystemID)
	}
	if !cfg.ExportOptions().Structure.IncludePlatform {
		t.Errorf("expected includePlatform, got %+v", cfg)
	}
	if cfg.OutputDir != "." {
		t.Errorf("expected default output dir, got %q", cfg.OutputDir)
	}
	if _, err := cfg.FetchTimeout(); err == nil {
		t.Error("expected error for invalid timeout")
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/empty", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config when not found, got %+v", cfg)
	}

	if got := LoadOrDefault(mfs, "/project"); !reflect.DeepEqual(got, Default()) {
		t.Errorf("LoadOrDefault() = %+v, want defaults", got)
	}
}

func TestRequireVersionRef(t *testing.T) {
	cfg := Default()
	if _, err := cfg.RequireVersionRef(); !errors.Is(err, ErrMissingDesignSystem) {
		t.Errorf("expected ErrMissingDesignSystem, got %v", err)
	}

	cfg.DesignSystemID, cfg.VersionID = "ds", "v"
	ref, err := cfg.RequireVersionRef()
	if err != nil || ref.DesignSystemID != "ds" || ref.VersionID != "v" {
		t.Errorf("RequireVersionRef() = %+v, %v", ref, err)
	}
}

func TestSnapshotFiles_Globs(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/sources", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	files, err := cfg.SnapshotFiles(mfs, "/project")
	if err != nil {
		t.Fatalf("SnapshotFiles() error = %v", err)
	}

	wantTokens := []string{
		"/project/snapshots/v1/tokens-a.json",
		"/project/snapshots/v1/tokens-b.json",
		"/project/snapshots/v2/tokens.json",
	}
	if !reflect.DeepEqual(files.Tokens, wantTokens) {
		t.Errorf("Tokens = %v, want %v", files.Tokens, wantTokens)
	}
	if !reflect.DeepEqual(files.Groups, []string{"/project/snapshots/v1/groups.yaml"}) {
		t.Errorf("Groups = %v", files.Groups)
	}
	// explicit paths keep their configured order
	wantBrands := []string{
		"/project/snapshots/v2/brands.json",
		"/project/snapshots/v1/brands.json",
	}
	if !reflect.DeepEqual(files.Brands, wantBrands) {
		t.Errorf("Brands = %v, want %v", files.Brands, wantBrands)
	}
}

func TestPatterns_Unmarshal(t *testing.T) {
	var fromYAML Sources
	if err := yaml.Unmarshal([]byte("tokens: a.json\ngroups: [b.json, c.json]\n"), &fromYAML); err != nil {
		t.Fatalf("yaml error: %v", err)
	}
	if len(fromYAML.Tokens) != 1 || len(fromYAML.Groups) != 2 {
		t.Errorf("unexpected YAML sources %+v", fromYAML)
	}

	var fromJSON Sources
	if err := json.Unmarshal([]byte(`{"tokens":"a.json","brands":["x.json"]}`), &fromJSON); err != nil {
		t.Fatalf("json error: %v", err)
	}
	if len(fromJSON.Tokens) != 1 || len(fromJSON.Brands) != 1 || len(fromJSON.Groups) != 0 {
		t.Errorf("unexpected JSON sources %+v", fromJSON)
	}
	if fromJSON.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
}
