// Copyright (c) 2026, the sockpp project authors.  All rights reserved.
//
// Licensed under the BSD 3-Clause License. See the LICENSE file in the
// repository root for the full license text.

package recipe

import (
	"fmt"
	"strings"

	"github.com/fpagliughi/sockpkg/pkg/errors"
)

// OptionValue represents the tri-state value of a build option. Deferred
// means "emit no flag and let the underlying build system's own default
// apply". Collapsing Deferred into Disabled would silently change build
// behavior, so the three states are kept distinct.
type OptionValue string

const (
	// OptionDeferred defers the decision to the underlying build system.
	OptionDeferred OptionValue = "deferred"
	// OptionEnabled forces the option on.
	OptionEnabled OptionValue = "enabled"
	// OptionDisabled forces the option off.
	OptionDisabled OptionValue = "disabled"
)

// IsValid returns true if the value is one of the three recognized states.
// The zero value "" is not valid; construct Options via DefaultOptions or
// ParseOptions.
func (v OptionValue) IsValid() bool {
	switch v {
	case OptionDeferred, OptionEnabled, OptionDisabled:
		return true
	default:
		return false
	}
}

// ParseOptionValue parses a string into an OptionValue. Accepted spellings
// (case-insensitive): on/true/yes/enabled, off/false/no/disabled, and
// default/defer/deferred or empty for the deferred state.
func ParseOptionValue(s string) (OptionValue, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "defer", "deferred", "none":
		return OptionDeferred, nil
	case "on", "true", "yes", "enabled":
		return OptionEnabled, nil
	case "off", "false", "no", "disabled":
		return OptionDisabled, nil
	default:
		return "", errors.Newf(errors.ErrCodeInvalidOption, "invalid option value: %q", s)
	}
}

// Recognized option names.
const (
	OptionShared   = "shared"
	OptionExamples = "examples"
	OptionTests    = "tests"
	OptionDocs     = "docs"
)

// SupportedOptionNames returns all recognized option names sorted
// alphabetically.
func SupportedOptionNames() []string {
	return []string{OptionDocs, OptionExamples, OptionShared, OptionTests}
}

// Options is the build option set of the recipe. The zero value is not
// usable directly; use DefaultOptions for the all-deferred default set.
type Options struct {
	Shared   OptionValue `json:"shared" yaml:"shared"`
	Examples OptionValue `json:"examples" yaml:"examples"`
	Tests    OptionValue `json:"tests" yaml:"tests"`
	Docs     OptionValue `json:"docs" yaml:"docs"`
}

// DefaultOptions returns the declared option defaults: every option
// deferred to the underlying build's own defaults.
func DefaultOptions() Options {
	return Options{
		Shared:   OptionDeferred,
		Examples: OptionDeferred,
		Tests:    OptionDeferred,
		Docs:     OptionDeferred,
	}
}

// ParseOptions builds an option set from a name→value map, such as a CLI
// flag set or a YAML profile. Any key outside the recognized option names
// fails with an INVALID_OPTION error before any value is applied; omitted
// keys stay deferred.
func ParseOptions(values map[string]string) (Options, error) {
	opts := DefaultOptions()

	for name, raw := range values {
		var field *OptionValue
		switch name {
		case OptionShared:
			field = &opts.Shared
		case OptionExamples:
			field = &opts.Examples
		case OptionTests:
			field = &opts.Tests
		case OptionDocs:
			field = &opts.Docs
		default:
			return Options{}, errors.Newf(errors.ErrCodeInvalidOption,
				"unrecognized option %q, supported options: %v", name, SupportedOptionNames())
		}

		value, err := ParseOptionValue(raw)
		if err != nil {
			return Options{}, errors.WrapWithContext(
				errors.ErrCodeInvalidOption,
				fmt.Sprintf("option %q", name),
				err,
				map[string]any{"option": name, "value": raw},
			)
		}
		*field = value
	}

	return opts, nil
}

// Validate checks that every option value is one of the three recognized
// states. Options built through ParseOptions are always valid; this guards
// hand-constructed literals.
func (o Options) Validate() error {
	for name, value := range map[string]OptionValue{
		OptionShared:   o.Shared,
		OptionExamples: o.Examples,
		OptionTests:    o.Tests,
		OptionDocs:     o.Docs,
	} {
		if !value.IsValid() {
			return errors.Newf(errors.ErrCodeInvalidOption,
				"option %q has invalid value %q", name, string(value))
		}
	}
	return nil
}
