/*
Copyright © 2026 the sockpp project authors
SPDX-License-Identifier: BSD-3-Clause
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/fpagliughi/sockpkg/pkg/logging"
	"github.com/fpagliughi/sockpkg/pkg/serializer"
)

const name = "sockpkg"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Output file path (default: stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"t"},
	Value:   string(serializer.FormatYAML),
	Usage: fmt.Sprintf("Output format (supported values: %s)",
		strings.Join(serializer.SupportedFormats(), ", ")),
}

// New assembles the root command with all subcommands.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Build and package the sockpp library",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Description: `sockpkg drives the CMake build of the sockpp C++ socket library through
its packaging lifecycle and publishes the metadata consumers need to link
against the packaged result.

configure - resolve build options into CMake flags and generate build files
build     - configure, then compile for the current target platform
package   - configure, then stage include/ and lib/ into the package root
info      - print the consumption metadata for a target operating system`,
		Commands: []*cli.Command{
			configureCmd(),
			buildCmd(),
			packageCmd(),
			infoCmd(),
		},
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	logging.SetDefaultStructuredLogger(name, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown; cancellation kills any
	// in-flight cmake process.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
