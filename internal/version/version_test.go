/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"strings"
	"testing"
)

func TestGet_LdflagsVersion(t *testing.T) {
	saved := Version
	t.Cleanup(func() { Version = saved })

	Version = "v1.2.3"
	if got := Get(); got != "v1.2.3" {
		t.Errorf("Get() = %q, want v1.2.3", got)
	}
	if got := UserAgent(); got != "dsexport/v1.2.3" {
		t.Errorf("UserAgent() = %q, want dsexport/v1.2.3", got)
	}
	if got := Info().Version; got != "v1.2.3" {
		t.Errorf("Info().Version = %q, want v1.2.3", got)
	}
}

func TestUserAgent_Prefix(t *testing.T) {
	if !strings.HasPrefix(UserAgent(), "dsexport/") {
		t.Errorf("UserAgent() = %q, want dsexport/ prefix", UserAgent())
	}
}

func TestShortCommit(t *testing.T) {
	if got := shortCommit("0123456789abcdef"); got != "0123456" {
		t.Errorf("shortCommit() = %q", got)
	}
	if got := shortCommit("abc"); got != "abc" {
		t.Errorf("shortCommit() = %q", got)
	}
}
