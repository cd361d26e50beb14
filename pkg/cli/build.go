/*
Copyright © 2026 the sockpp project authors
SPDX-License-Identifier: BSD-3-Clause
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/fpagliughi/sockpkg/pkg/recipe"
)

func buildCmd() *cli.Command {
	flags := []cli.Flag{matrixFlag, parallelFlag}
	flags = append(flags, optionFlags()...)
	flags = append(flags, targetFlags()...)
	flags = append(flags, dirFlags()...)

	return &cli.Command{
		Name:                  "build",
		EnableShellCompletion: true,
		Usage:                 "Configure and compile sockpp for the target platform",
		Description: `Run the CMake configure step (flags are recomputed from the options on
every invocation) followed by the compile step.

A build matrix file can drive several target platforms in one run; each
target gets its own recipe instance and an isolated build directory:

  sockpkg build --matrix targets.yaml --parallel 2 --shared on

On failure the run aborts and partial build artifacts are left as CMake
leaves them.`,
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

			return runMatrix(ctx, targets, int(cmd.Int("parallel")), func(ctx context.Context, target recipe.Target) error {
				return newRecipe(cmd, opts, target, multi).Build(ctx)
			})
		},
	}
}
