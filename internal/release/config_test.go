// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package release

import (
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/base/testutil"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "release.yaml")
	if err := os.WriteFile(path, []byte(`
product: aurora
dist: out
build_command: [npm, run, build]
members: [index.js, package.json]
`), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	c.setDefaults()

	testutil.AssertEqual(t, c.Product, "aurora")
	testutil.AssertEqual(t, c.Dist, "out")
	testutil.AssertEqual(t, c.Placeholder, "<VERSION>")
	testutil.AssertEqual(t, c.VersionFile, "package.json")

	if diff := cmp.Diff([]string{"npm", "run", "build"}, c.BuildCommand); diff != "" {
		t.Errorf("build command mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"index.js", "package.json"}, c.Members); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}
	// Default assets follow the configured distribution directory.
	wantAssets := []Asset{
		{Src: filepath.Join("src", "icon.png"), Dst: filepath.Join("out", "icon.png")},
		{Src: filepath.Join("src", "package.json"), Dst: filepath.Join("out", "package.json")},
		{Src: "README.md", Dst: filepath.Join("out", "README.md")},
	}
	if diff := cmp.Diff(wantAssets, c.Assets); diff != "" {
		t.Errorf("assets mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "release.yaml")
	if err := os.WriteFile(path, []byte("members: {not: a list}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig must fail on mismatched types")
	}
}
