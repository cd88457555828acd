// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Pack packages the everia library for release.

# Usage

	$ go tool pack [flags]

Pack must be run from the project root. It runs the bundler (rollup -c),
copies the icon, package.json and README.md into the dist directory,
writes the version from package.json into the copied package.json,
compresses the result into dist/everia.v<version>.zip and removes
everything else from dist.

Any failure stops packaging and leaves dist as it was at that point.

# Configuration

Paths, file lists and the bundler command are compiled in. Pass
-config with a YAML file to override them:

	product: everia
	dist: dist
	build_command: [rollup, -c]
	placeholder: <VERSION>
	members: [icon.png, package.json, README.md, index.js]

Use -skip-build to package an existing build output.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
