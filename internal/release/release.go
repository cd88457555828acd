// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package release packages the everia library for distribution.

Packaging is a pipeline of five stages that run strictly in order:

	build    Runs the bundler (rollup -c by default) in the project root.
	stage    Copies static assets into the distribution directory.
	version  Replaces the version placeholder in the staged manifest.
	archive  Compresses staged files into <product>.v<version>.zip.
	cleanup  Removes everything from the distribution directory except
	         the archive.

The first failing stage stops the pipeline. Nothing is retried or rolled
back, so a failure may leave the distribution directory half populated.
*/
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"go.astrophena.name/base/logger"
)

// Possible errors, used in tests.
var (
	errVersionMissing  = errors.New("version must be provided in package.json")
	errNoBuildCommand  = errors.New("build command is empty")
	errAssetIncomplete = errors.New("asset must have both source and destination")
)

// Config represents a packaging configuration.
type Config struct {
	// Dir is the project root. All other paths are relative to it. If empty,
	// uses the current directory.
	Dir string `yaml:"dir"`
	// Dist is the distribution directory, relative to Dir. It must already
	// exist when staging starts; normally the bundler creates it.
	Dist string `yaml:"dist"`
	// Product is the product name embedded in the archive name.
	Product string `yaml:"product"`
	// Version is the release version. If empty, it is read from VersionFile.
	Version string `yaml:"version"`
	// VersionFile is the package manifest holding the release version.
	VersionFile string `yaml:"version_file"`
	// BuildCommand is the bundler command line.
	BuildCommand []string `yaml:"build_command"`
	// SkipBuild skips the build stage, packaging whatever Dist holds.
	SkipBuild bool `yaml:"skip_build"`
	// Assets are copied verbatim before the manifest is versioned.
	Assets []Asset `yaml:"assets"`
	// Manifest is the staged manifest path, relative to Dist.
	Manifest string `yaml:"manifest"`
	// Placeholder is replaced with Version in the staged manifest.
	Placeholder string `yaml:"placeholder"`
	// Members are the archive member names, relative to Dist.
	Members []string `yaml:"members"`

	// Standard streams inherited by the bundler. Nil means the process
	// streams.
	Stdin  io.Reader `yaml:"-"`
	Stdout io.Writer `yaml:"-"`
	Stderr io.Writer `yaml:"-"`
}

// Asset is a file copied into the distribution directory.
type Asset struct {
	Src string `yaml:"src"`
	Dst string `yaml:"dst"`
}

func (c *Config) setDefaults() {
	if c.Dir == "" {
		c.Dir = filepath.Join(".")
	}
	if c.Dist == "" {
		c.Dist = "dist"
	}
	if c.Product == "" {
		c.Product = "everia"
	}
	if c.VersionFile == "" {
		c.VersionFile = "package.json"
	}
	if c.BuildCommand == nil {
		c.BuildCommand = []string{"rollup", "-c"}
	}
	if c.Assets == nil {
		c.Assets = []Asset{
			{Src: filepath.Join("src", "icon.png"), Dst: filepath.Join(c.Dist, "icon.png")},
			{Src: filepath.Join("src", "package.json"), Dst: filepath.Join(c.Dist, "package.json")},
			{Src: "README.md", Dst: filepath.Join(c.Dist, "README.md")},
		}
	}
	if c.Manifest == "" {
		c.Manifest = "package.json"
	}
	if c.Placeholder == "" {
		c.Placeholder = "<VERSION>"
	}
	if c.Members == nil {
		c.Members = []string{"icon.png", "package.json", "README.md", "index.js"}
	}
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
}

func (c *Config) path(elem ...string) string {
	return filepath.Join(append([]string{c.Dir}, elem...)...)
}

func (c *Config) distPath(elem ...string) string {
	return c.path(append([]string{c.Dist}, elem...)...)
}

// StageError reports the pipeline stage that failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return e.Stage + ": " + e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }

// ArchiveName returns the archive file name for the product version, for
// example everia.v1.2.3.zip.
func ArchiveName(product, version string) string {
	return fmt.Sprintf("%s.v%s.zip", product, version)
}

// Run packages a release based on the provided [Config].
func Run(ctx context.Context, c *Config) error {
	c.setDefaults()

	if c.Version == "" {
		v, err := ReadVersion(c.path(c.VersionFile))
		if err != nil {
			return err
		}
		c.Version = v
	}
	archive := ArchiveName(c.Product, c.Version)

	if c.SkipBuild {
		logger.Info(ctx, "skipping lib build")
	} else {
		if err := c.build(ctx); err != nil {
			logger.Error(ctx, "lib build failed", slog.Any("err", err))
			return &StageError{Stage: "build", Err: err}
		}
		logger.Info(ctx, "lib build completed")
	}

	if err := c.stage(); err != nil {
		return &StageError{Stage: "stage", Err: err}
	}
	logger.Info(ctx, "files copied", slog.Int("count", len(c.Assets)))

	if err := c.writeVersion(); err != nil {
		return &StageError{Stage: "version", Err: err}
	}
	logger.Info(ctx, "version has been written",
		slog.String("manifest", filepath.Join(c.Dist, c.Manifest)),
		slog.String("version", c.Version),
	)

	if err := writeArchive(c.distPath(archive), c.distPath(), c.Members); err != nil {
		return &StageError{Stage: "archive", Err: err}
	}
	logger.Info(ctx, "files zipped", slog.String("archive", archive))

	if err := Prune(c.distPath(), archive); err != nil {
		return &StageError{Stage: "cleanup", Err: err}
	}
	logger.Info(ctx, "other files deleted", slog.String("dir", c.Dist))

	return nil
}

// ReadVersion returns the "version" field of the JSON package manifest at
// path. A manifest without the field yields an empty version.
func ReadVersion(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(b, &pkg); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return pkg.Version, nil
}

func (c *Config) build(ctx context.Context) error {
	if len(c.BuildCommand) == 0 {
		return errNoBuildCommand
	}
	cmd := exec.CommandContext(ctx, c.BuildCommand[0], c.BuildCommand[1:]...)
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	return cmd.Run()
}

func (c *Config) stage() error {
	for _, a := range c.Assets {
		if a.Src == "" || a.Dst == "" {
			return fmt.Errorf("%+v: %w", a, errAssetIncomplete)
		}
		if err := copyFile(c.path(a.Src), c.path(a.Dst)); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies src to dst, replacing dst if it exists. The source file
// mode is kept.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
