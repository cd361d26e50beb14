// Copyright (c) 2026, the sockpp project authors.  All rights reserved.
//
// Licensed under the BSD 3-Clause License. See the LICENSE file in the
// repository root for the full license text.

package defaults

import "time"

// Build-tool timeouts for the underlying CMake invocations.
const (
	// ConfigureTimeout is the maximum duration for the configure step.
	// Generation of build files is usually fast; a hang here means a broken
	// toolchain probe, not a slow machine.
	ConfigureTimeout = 5 * time.Minute

	// BuildTimeout is the maximum duration for the compile step.
	BuildTimeout = 30 * time.Minute

	// InstallTimeout is the maximum duration for the install step.
	// Installation only stages already-built artifacts.
	InstallTimeout = 5 * time.Minute
)

// CLI timeouts for command-line operations.
const (
	// CLIRunTimeout bounds a full configure/build/package run driven by the
	// CLI, across all targets in a matrix.
	CLIRunTimeout = 2 * time.Hour
)
