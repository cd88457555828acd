// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"errors"
	"os"
	"path/filepath"

	"go.astrophena.name/base/unwrap"
)

// EnsureRoot checks that the current working directory is at the project
// root, next to package.json, and panics if it doesn't.
func EnsureRoot() {
	if err := checkRoot(unwrap.Value(os.Getwd())); err != nil {
		panic(err)
	}
}

func checkRoot(dir string) error {
	if _, err := os.Stat(filepath.Join(dir, "package.json")); os.IsNotExist(err) {
		return errNotRoot
	} else if err != nil {
		return err
	}
	return nil
}

var errNotRoot = errors.New("not at project root: package.json not found")
