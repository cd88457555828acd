// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package release

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestInterpolateVersion(t *testing.T) {
	cases := map[string]struct {
		in, want string
	}{
		"placeholder": {
			in:   `{"version": "<VERSION>"}`,
			want: `{"version": "1.2.3"}`,
		},
		"no placeholder": {
			in:   `{"version": "0.0.0"}`,
			want: `{"version": "0.0.0"}`,
		},
		"first occurrence only": {
			in:   `{"version": "<VERSION>", "description": "<VERSION>"}`,
			want: `{"version": "1.2.3", "description": "<VERSION>"}`,
		},
		"empty": {
			in:   "",
			want: "",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, InterpolateVersion(tc.in, "<VERSION>", "1.2.3"), tc.want)
		})
	}
}

func TestWriteVersion(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "dist"), 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(dir, "dist", "package.json")
	if err := os.WriteFile(manifest, []byte("{\n  \"version\": \"<VERSION>\"\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := &Config{Dir: dir}
	c.setDefaults()

	if err := c.writeVersion(); !errors.Is(err, errVersionMissing) {
		t.Fatalf("want %v, got %v", errVersionMissing, err)
	}
	// The precondition is checked before the manifest is touched.
	testutil.AssertEqual(t, readFile(t, manifest), "{\n  \"version\": \"<VERSION>\"\n}\n")

	c.Version = "2.0.0"
	if err := c.writeVersion(); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, readFile(t, manifest), "{\n  \"version\": \"2.0.0\"\n}\n")

	// Placeholder is gone now, so the file is rewritten unchanged.
	c.Version = "3.0.0"
	if err := c.writeVersion(); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, readFile(t, manifest), "{\n  \"version\": \"2.0.0\"\n}\n")
}
