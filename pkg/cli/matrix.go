/*
Copyright © 2026 the sockpp project authors
SPDX-License-Identifier: BSD-3-Clause
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/fpagliughi/sockpkg/pkg/recipe"
	"github.com/fpagliughi/sockpkg/pkg/serializer"
)

var matrixFlag = &cli.StringFlag{
	Name:    "matrix",
	Aliases: []string{"m"},
	Usage:   "Path to a YAML/JSON build matrix listing target platforms; target flags are ignored when set",
}

var parallelFlag = &cli.IntFlag{
	Name:  "parallel",
	Value: 1,
	Usage: "Number of matrix targets to drive concurrently",
}

// matrixFile is the on-disk shape of a build matrix.
//
// Example:
//
//	targets:
//	  - os: linux
//	    arch: amd64
//	    buildType: Release
//	  - os: windows
//	    arch: x86_64
//	    compiler: msvc
type matrixFile struct {
	Targets []matrixTarget `json:"targets" yaml:"targets"`
}

type matrixTarget struct {
	OS        string `json:"os" yaml:"os"`
	Compiler  string `json:"compiler,omitempty" yaml:"compiler,omitempty"`
	BuildType string `json:"buildType,omitempty" yaml:"buildType,omitempty"`
	Arch      string `json:"arch,omitempty" yaml:"arch,omitempty"`
}

// loadMatrix reads a build matrix file into target tuples.
func loadMatrix(path string) ([]recipe.Target, error) {
	m, err := serializer.FromFile[matrixFile](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load build matrix from %q: %w", path, err)
	}
	if len(m.Targets) == 0 {
		return nil, fmt.Errorf("build matrix %q declares no targets", path)
	}

	targets := make([]recipe.Target, 0, len(m.Targets))
	for i, mt := range m.Targets {
		buildType, err := recipe.ParseBuildType(mt.BuildType)
		if err != nil {
			return nil, fmt.Errorf("build matrix target %d: %w", i+1, err)
		}
		targets = append(targets, recipe.Target{
			OS:        recipe.ParseOSType(mt.OS),
			Compiler:  mt.Compiler,
			BuildType: buildType,
			Arch:      mt.Arch,
		})
	}
	return targets, nil
}

// targetsFromCmd returns the targets to drive: the matrix file when given,
// otherwise the single target described by the command flags. The second
// return reports whether per-target directory isolation is needed.
func targetsFromCmd(cmd *cli.Command) ([]recipe.Target, bool, error) {
	if path := cmd.String("matrix"); path != "" {
		targets, err := loadMatrix(path)
		if err != nil {
			return nil, false, err
		}
		return targets, len(targets) > 1, nil
	}

	target, err := targetFromCmd(cmd)
	if err != nil {
		return nil, false, err
	}
	return []recipe.Target{target}, false, nil
}

// runMatrix drives fn for every target. Each target is handled by its own
// recipe instance, so concurrent targets share nothing; parallelism only
// bounds how many run at once. The first failure cancels the rest.
func runMatrix(ctx context.Context, targets []recipe.Target, parallel int, fn func(context.Context, recipe.Target) error) error {
	if parallel < 1 {
		parallel = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for _, target := range targets {
		g.Go(func() error {
			if err := fn(gctx, target); err != nil {
				return fmt.Errorf("target %s: %w", target.Slug(), err)
			}
			return nil
		})
	}

	return g.Wait()
}
