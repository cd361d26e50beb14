/*
Copyright © 2026 the sockpp project authors
SPDX-License-Identifier: BSD-3-Clause
*/
package cli

import (
	"context"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/fpagliughi/sockpkg/pkg/recipe"
)

func packageCmd() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "package-dir",
			Aliases: []string{"P"},
			Value:   "dist",
			Usage:   "Package output root; include/ and lib/ are staged beneath it",
		},
		matrixFlag,
		parallelFlag,
	}
	flags = append(flags, optionFlags()...)
	flags = append(flags, targetFlags()...)
	flags = append(flags, dirFlags()...)

	return &cli.Command{
		Name:                  "package",
		EnableShellCompletion: true,
		Usage:                 "Configure and stage the built artifacts into the package root",
		Description: `Run the CMake configure step followed by the install step, staging the
built headers and libraries into the package output root:

  sockpkg package --shared off --package-dir dist

The staged layout is the package root containing include/ and lib/.
With a build matrix, each target is staged into a per-target
subdirectory of the package root.`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := optionsFromCmd(cmd)
			if err != nil {
				return err
			}

			targets, multi, err := targetsFromCmd(cmd)
			if err != nil {
				return err
			}

			packageDir := cmd.String("package-dir")

			return runMatrix(ctx, targets, int(cmd.Int("parallel")), func(ctx context.Context, target recipe.Target) error {
				dest := packageDir
				if multi {
					dest = filepath.Join(packageDir, target.Slug())
				}
				return newRecipe(cmd, opts, target, multi).Package(ctx, dest)
			})
		},
	}
}
