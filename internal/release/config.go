// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package release

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML packaging configuration from path. Fields left
// out of the file keep their defaults:
//
//	product: everia
//	dist: dist
//	build_command: [rollup, -c]
//	assets:
//	  - src: src/icon.png
//	    dst: dist/icon.png
//	members: [icon.png, package.json, README.md, index.js]
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := new(Config)
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
