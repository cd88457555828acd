// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/everia/internal/devtools"
	"go.astrophena.name/everia/internal/release"
)

func main() { cli.Main(new(app)) }

type app struct {
	config    string
	skipBuild bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.config, "config", "", "Read packaging configuration from YAML `file`.")
	fs.BoolVar(&a.skipBuild, "skip-build", false, "Package existing build output without running the bundler.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	c := new(release.Config)
	if a.config != "" {
		var err error
		c, err = release.LoadConfig(a.config)
		if err != nil {
			return err
		}
	}
	if a.skipBuild {
		c.SkipBuild = true
	}

	env := cli.GetEnv(ctx)
	c.Stdin, c.Stdout, c.Stderr = env.Stdin, env.Stdout, env.Stderr

	return release.Run(ctx, c)
}
