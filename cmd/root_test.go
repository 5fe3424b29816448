/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommands(t *testing.T) {
	want := []string{"export", "render", "structure", "version"}
	for _, name := range want {
		if c, _, err := rootCmd.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("expected %s command to be registered", name)
		}
	}
}

func TestExecute_Version(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if err := Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "dsexport ") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestExecute_InvalidLogLevel(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--log-level", "loud", "version"})
	defer rootCmd.SetArgs(nil)

	if err := Execute(); err == nil {
		t.Error("expected error for unknown log level")
	}
}
