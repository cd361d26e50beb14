// Copyright (c) 2026, the sockpp project authors.  All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file in the repository root.

// Package cli implements the command-line interface for the sockpkg tool.
//
// # Overview
//
// sockpkg drives the sockpp C++ socket library through its packaging
// lifecycle: resolving build options into CMake configuration flags,
// compiling, staging the built artifacts into a package layout, and
// publishing the metadata consumers need to link against the result.
//
// # Commands
//
// configure - Resolve options and generate build files:
//
//	sockpkg configure [--shared on|off|default] [--tests off] [--dry-run]
//
// Translates the recipe's tri-state build options into SOCKPP_BUILD_*
// flags and hands them to CMake. With --dry-run the resolved flag set is
// printed instead of invoking CMake.
//
// build - Configure and compile:
//
//	sockpkg build [--matrix targets.yaml] [--parallel N] [option flags]
//
// Runs the configure step followed by the compile step. A build matrix
// file drives several target platforms in one run, each with an isolated
// build directory.
//
// package - Configure and stage artifacts:
//
//	sockpkg package --package-dir dist [option flags]
//
// Runs the configure step followed by the install step, staging include/
// and lib/ into the package output root.
//
// info - Print package consumption metadata:
//
//	sockpkg info --os windows [--format json]
//
// Publishes include and library directories, library names, and
// platform-specific system libraries for a target operating system. This
// is a pure metadata query and never invokes CMake.
//
// # Build Options
//
// Every option takes on, off, or default. "default" emits no
// configuration flag at all and defers to the defaults in the project's
// CMakeLists; it is not the same as off.
//
//	--shared    Linkage: on builds shared libraries, off builds static
//	--examples  Build the example programs
//	--tests     Build the unit tests
//	--docs      Build the API documentation
//	--options   Option profile file; explicit flags override its entries
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/recipe - option resolution, lifecycle, package metadata
//   - pkg/cmake - CMake process driver
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/fpagliughi/sockpkg/pkg/cli.version=1.0.0'"
package cli
