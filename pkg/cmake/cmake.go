// Copyright (c) 2026, the sockpp project authors.  All rights reserved.
//
// Licensed under the BSD 3-Clause License. See the LICENSE file in the
// repository root for the full license text.

package cmake

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/fpagliughi/sockpkg/pkg/defaults"
	"github.com/fpagliughi/sockpkg/pkg/recipe"
)

// outputTailLimit bounds how much tool output rides along in error messages.
const outputTailLimit = 2048

// Config controls a Driver instance. SourceDir and BuildDir are required;
// an empty BuildType defers to the CMake project's own default.
type Config struct {
	SourceDir string
	BuildDir  string
	BuildType recipe.BuildType
}

// Driver runs the real cmake executable. It implements recipe.BuildSystem.
//
// The driver keeps no state between calls beyond its configuration; the
// generated build tree in BuildDir is CMake's own. Failures are returned
// verbatim with the tail of the tool output; no retries, no cleanup.
type Driver struct {
	cfg Config

	configureTimeout time.Duration
	buildTimeout     time.Duration
	installTimeout   time.Duration
}

// interface guard
var _ recipe.BuildSystem = (*Driver)(nil)

// New creates a Driver for the given source and build directories.
func New(cfg Config) *Driver {
	return &Driver{
		cfg:              cfg,
		configureTimeout: defaults.ConfigureTimeout,
		buildTimeout:     defaults.BuildTimeout,
		installTimeout:   defaults.InstallTimeout,
	}
}

// Configure runs the CMake configuration step with the given flag set,
// generating build files into the build directory.
func (d *Driver) Configure(ctx context.Context, flags recipe.FlagSet) error {
	return d.run(ctx, d.configureTimeout, d.configureArgs(flags))
}

// Build runs the compile step against the configured build directory.
func (d *Driver) Build(ctx context.Context) error {
	return d.run(ctx, d.buildTimeout, d.buildArgs())
}

// Install stages built artifacts under dest, which becomes the package root
// containing include/ and lib/.
func (d *Driver) Install(ctx context.Context, dest string) error {
	return d.run(ctx, d.installTimeout, d.installArgs(dest))
}

// configureArgs builds the argv for the configure step. Flags are emitted in
// sorted order so repeated configures produce identical command lines.
func (d *Driver) configureArgs(flags recipe.FlagSet) []string {
	args := []string{"-S", d.cfg.SourceDir, "-B", d.cfg.BuildDir}
	if d.cfg.BuildType != recipe.BuildTypeDefault {
		args = append(args, fmt.Sprintf("-DCMAKE_BUILD_TYPE=%s", d.cfg.BuildType))
	}
	for _, name := range flags.SortedKeys() {
		args = append(args, fmt.Sprintf("-D%s=%s", name, flags[name]))
	}
	return args
}

func (d *Driver) buildArgs() []string {
	return []string{"--build", d.cfg.BuildDir}
}

func (d *Driver) installArgs(dest string) []string {
	return []string{"--install", d.cfg.BuildDir, "--prefix", dest}
}

// run locates cmake and executes it with the given arguments, bounded by
// the step timeout. The combined output tail is attached to any error.
func (d *Driver) run(ctx context.Context, timeout time.Duration, args []string) error {
	cmakePath, err := exec.LookPath("cmake")
	if err != nil {
		return fmt.Errorf("cmake not found in PATH: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	slog.Debug("running cmake", "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, cmakePath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("cmake %s: %w: %s", args[0], err, outputTail(output))
	}
	return nil
}

// outputTail returns the last portion of tool output, trimmed, for error
// reporting.
func outputTail(output []byte) string {
	s := strings.TrimSpace(string(output))
	if len(s) > outputTailLimit {
		s = "..." + s[len(s)-outputTailLimit:]
	}
	return s
}
