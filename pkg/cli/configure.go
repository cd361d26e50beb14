/*
Copyright © 2026 the sockpp project authors
SPDX-License-Identifier: BSD-3-Clause
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
)

func configureCmd() *cli.Command {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the resolved configuration flag set without invoking CMake",
		},
		outputFlag,
		formatFlag,
	}
	flags = append(flags, optionFlags()...)
	flags = append(flags, targetFlags()...)
	flags = append(flags, dirFlags()...)

	return &cli.Command{
		Name:                  "configure",
		EnableShellCompletion: true,
		Usage:                 "Resolve build options and run the CMake configuration step",
		Description: `Translate the recipe's build options into SOCKPP_BUILD_* configuration
flags and hand them to CMake, which generates its build files into the
build directory.

Options are tri-state: on, off, or default. "default" emits no flag at
all and defers to the defaults in the project's CMakeLists; it is not the
same as off.

Use --dry-run to inspect the resolved flag set without invoking CMake:

  sockpkg configure --shared on --tests off --dry-run --format table`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := optionsFromCmd(cmd)
			if err != nil {
				return err
			}

			target, err := targetFromCmd(cmd)
			if err != nil {
				return err
			}

			if cmd.Bool("dry-run") {
				flagSet, err := opts.Resolve()
				if err != nil {
					return err
				}

				writer, err := newWriter(cmd)
				if err != nil {
					return err
				}
				defer closeWriter(writer)

				return writer.WithTitle("configuration flags").Serialize(flagSet)
			}

			return newRecipe(cmd, opts, target, false).Configure(ctx)
		},
	}
}

// closeWriter closes an output writer, logging rather than failing on close
// errors since the payload has already been written.
func closeWriter(c interface{ Close() error }) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close output writer", "error", err)
	}
}
