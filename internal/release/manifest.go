// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package release

import (
	"os"
	"strings"
)

// InterpolateVersion replaces the first occurrence of placeholder in text
// with version. Text without the placeholder is returned unchanged.
func InterpolateVersion(text, placeholder, version string) string {
	return strings.Replace(text, placeholder, version, 1)
}

func (c *Config) writeVersion() error {
	if c.Version == "" {
		return errVersionMissing
	}

	path := c.distPath(c.Manifest)
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s := InterpolateVersion(string(b), c.Placeholder, c.Version)
	return os.WriteFile(path, []byte(s), fi.Mode().Perm())
}
