// Copyright (c) 2026, the sockpp project authors.  All rights reserved.
//
// Licensed under the BSD 3-Clause License. See the LICENSE file in the
// repository root for the full license text.

package recipe

import "sort"

// Configuration flag names consumed by the sockpp CMake build.
const (
	FlagBuildShared        = "SOCKPP_BUILD_SHARED"
	FlagBuildStatic        = "SOCKPP_BUILD_STATIC"
	FlagBuildExamples      = "SOCKPP_BUILD_EXAMPLES"
	FlagBuildTests         = "SOCKPP_BUILD_TESTS"
	FlagBuildDocumentation = "SOCKPP_BUILD_DOCUMENTATION"
)

// Flag values understood by CMake option caches.
const (
	FlagOn  = "ON"
	FlagOff = "OFF"
)

// FlagSet maps configuration flag names to their ON/OFF values.
type FlagSet map[string]string

// SortedKeys returns the flag names in sorted order, for deterministic
// command-line construction and logging.
func (f FlagSet) SortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve translates the tri-state option set into the configuration flag
// set consumed by the underlying build. It is a pure function of the option
// set: deferred options emit no flags at all, and two calls with the same
// input yield an identical flag set.
//
// An option set holding a value outside the recognized states fails with an
// INVALID_OPTION error and emits no flags.
func (o Options) Resolve() (FlagSet, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	flags := make(FlagSet)

	// Shared linkage is a paired decision: forcing shared one way forces
	// static the other. Deferred emits neither flag.
	switch o.Shared {
	case OptionEnabled:
		flags[FlagBuildShared] = FlagOn
		flags[FlagBuildStatic] = FlagOff
	case OptionDisabled:
		flags[FlagBuildShared] = FlagOff
		flags[FlagBuildStatic] = FlagOn
	}

	for flag, value := range map[string]OptionValue{
		FlagBuildExamples:      o.Examples,
		FlagBuildTests:         o.Tests,
		FlagBuildDocumentation: o.Docs,
	} {
		switch value {
		case OptionEnabled:
			flags[flag] = FlagOn
		case OptionDisabled:
			flags[flag] = FlagOff
		}
	}

	return flags, nil
}
