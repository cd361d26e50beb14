/*
Copyright © 2026 the sockpp project authors
SPDX-License-Identifier: BSD-3-Clause
*/
package cli

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/fpagliughi/sockpkg/pkg/recipe"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:                  "info",
		EnableShellCompletion: true,
		Usage:                 "Print the package consumption metadata for a target operating system",
		Description: `Publish the metadata a consumer needs to link against the packaged
library: include and library directories relative to the package root,
library names, and platform-specific system libraries.

This is a pure metadata query. It never invokes CMake and does not
require a prior build, so it can be served cheaply, including against a
previously built cache:

  sockpkg info --os windows --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "os",
				Value: runtime.GOOS,
				Usage: fmt.Sprintf("Target operating system (supported values: %s)",
					strings.Join(recipe.SupportedOSTypes(), ", ")),
			},
			&cli.BoolFlag{
				Name:  "identity",
				Usage: "Include the recipe identity metadata in the response",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := recipe.Sockpp()

			info, err := recipe.PackageInfoFor(id, recipe.ParseOSType(cmd.String("os")))
			if err != nil {
				return err
			}

			writer, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(writer)

			if cmd.Bool("identity") {
				return writer.WithTitle("package info").Serialize(struct {
					Identity    recipe.Identity    `json:"identity" yaml:"identity"`
					PackageInfo recipe.PackageInfo `json:"packageInfo" yaml:"packageInfo"`
				}{Identity: id, PackageInfo: info})
			}

			return writer.WithTitle("package info").Serialize(info)
		},
	}
}
