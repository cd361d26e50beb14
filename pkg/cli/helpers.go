/*
Copyright © 2026 the sockpp project authors
SPDX-License-Identifier: BSD-3-Clause
*/
package cli

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/fpagliughi/sockpkg/pkg/cmake"
	"github.com/fpagliughi/sockpkg/pkg/recipe"
	"github.com/fpagliughi/sockpkg/pkg/serializer"
)

// optionFlags returns the shared build option flags. Each takes
// on|off|default; "default" defers to the CMakeLists defaults.
func optionFlags() []cli.Flag {
	usage := func(what string) string {
		return fmt.Sprintf("Build %s (supported values: on, off, default)", what)
	}
	return []cli.Flag{
		&cli.StringFlag{Name: "shared", Value: "default", Usage: "Linkage: on builds shared libraries, off builds static (supported values: on, off, default)"},
		&cli.StringFlag{Name: "examples", Value: "default", Usage: usage("the example programs")},
		&cli.StringFlag{Name: "tests", Value: "default", Usage: usage("the unit tests")},
		&cli.StringFlag{Name: "docs", Value: "default", Usage: usage("the API documentation")},
		&cli.StringFlag{
			Name:    "options",
			Aliases: []string{"O"},
			Usage:   "Path to a YAML/JSON option profile; explicit option flags override profile entries",
		},
	}
}

// targetFlags returns the shared target platform flags.
func targetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "os",
			Value: runtime.GOOS,
			Usage: fmt.Sprintf("Target operating system (package metadata published for: %s)",
				strings.Join(recipe.SupportedOSTypes(), ", ")),
		},
		&cli.StringFlag{Name: "compiler", Usage: "Target compiler identifier (informational)"},
		&cli.StringFlag{
			Name: "build-type",
			Usage: fmt.Sprintf("CMake build type (supported values: %s; empty defers to the project default)",
				strings.Join(recipe.SupportedBuildTypes(), ", ")),
		},
		&cli.StringFlag{Name: "arch", Value: runtime.GOARCH, Usage: "Target architecture"},
	}
}

// dirFlags returns the shared working directory flags.
func dirFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "source-dir", Aliases: []string{"S"}, Value: ".", Usage: "Directory containing the sockpp sources"},
		&cli.StringFlag{Name: "build-dir", Aliases: []string{"B"}, Value: "build", Usage: "Directory for CMake's generated build tree"},
	}
}

// optionsFromCmd builds the recipe option set from the command flags and,
// when given, an option profile file. Flags set explicitly on the command
// line override profile entries.
func optionsFromCmd(cmd *cli.Command) (recipe.Options, error) {
	values := make(map[string]string)

	if path := cmd.String("options"); path != "" {
		profile, err := serializer.FromFile[map[string]string](path)
		if err != nil {
			return recipe.Options{}, fmt.Errorf("failed to load option profile from %q: %w", path, err)
		}
		for k, v := range *profile {
			values[k] = v
		}
	}

	for _, name := range recipe.SupportedOptionNames() {
		if cmd.IsSet(name) || values[name] == "" {
			values[name] = cmd.String(name)
		}
	}

	return recipe.ParseOptions(values)
}

// targetFromCmd builds the target platform tuple from the command flags.
func targetFromCmd(cmd *cli.Command) (recipe.Target, error) {
	buildType, err := recipe.ParseBuildType(cmd.String("build-type"))
	if err != nil {
		return recipe.Target{}, err
	}

	return recipe.Target{
		OS:        recipe.ParseOSType(cmd.String("os")),
		Compiler:  cmd.String("compiler"),
		BuildType: buildType,
		Arch:      cmd.String("arch"),
	}, nil
}

// newRecipe wires a recipe for one target with an isolated cmake driver.
// When multi is true the build directory gains a per-target subdirectory so
// concurrent targets never share a build tree.
func newRecipe(cmd *cli.Command, opts recipe.Options, target recipe.Target, multi bool) *recipe.Recipe {
	buildDir := cmd.String("build-dir")
	if multi {
		buildDir = filepath.Join(buildDir, target.Slug())
	}

	driver := cmake.New(cmake.Config{
		SourceDir: cmd.String("source-dir"),
		BuildDir:  buildDir,
		BuildType: target.BuildType,
	})

	return recipe.New(recipe.Sockpp(), opts, target, driver)
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported formats: %s",
			format, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return format, nil
}

// newWriter creates the output serializer for a command. Callers must close
// the returned writer.
func newWriter(cmd *cli.Command) (*serializer.Writer, error) {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	return serializer.NewFileWriterOrStdout(format, cmd.String("output")), nil
}
