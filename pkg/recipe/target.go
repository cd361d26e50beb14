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

// OSType represents a target operating system. Values outside the supported
// set can be carried (e.g., parsed from user input) but have no published
// package metadata; see PackageInfoFor.
type OSType string

// OSType constants for the operating systems with published package metadata.
const (
	OSWindows OSType = "windows"
	OSLinux   OSType = "linux"
)

// ParseOSType normalizes an operating system string. Common aliases map to
// the canonical values; anything else is carried through lowercased so the
// metadata publisher can report it in its unsupported-platform error.
func ParseOSType(s string) OSType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows", "win32", "win64":
		return OSWindows
	case "linux":
		return OSLinux
	default:
		return OSType(strings.ToLower(strings.TrimSpace(s)))
	}
}

// IsValid returns true if the operating system has published package
// metadata.
func (o OSType) IsValid() bool {
	switch o {
	case OSWindows, OSLinux:
		return true
	default:
		return false
	}
}

// SupportedOSTypes returns all operating systems with published package
// metadata, sorted alphabetically.
func SupportedOSTypes() []string {
	return []string{string(OSLinux), string(OSWindows)}
}

// BuildType represents the CMake build type. The empty value defers to the
// underlying build's default.
type BuildType string

// BuildType constants for the standard CMake configurations.
const (
	BuildTypeDefault        BuildType = ""
	BuildTypeDebug          BuildType = "Debug"
	BuildTypeRelease        BuildType = "Release"
	BuildTypeRelWithDebInfo BuildType = "RelWithDebInfo"
	BuildTypeMinSizeRel     BuildType = "MinSizeRel"
)

// ParseBuildType parses a build type string (case-insensitive). Empty input
// yields BuildTypeDefault.
func ParseBuildType(s string) (BuildType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return BuildTypeDefault, nil
	case "debug":
		return BuildTypeDebug, nil
	case "release":
		return BuildTypeRelease, nil
	case "relwithdebinfo":
		return BuildTypeRelWithDebInfo, nil
	case "minsizerel":
		return BuildTypeMinSizeRel, nil
	default:
		return "", errors.Newf(errors.ErrCodeInvalidOption,
			"invalid build type %q, supported values: %v", s, SupportedBuildTypes())
	}
}

// SupportedBuildTypes returns the recognized build type spellings.
func SupportedBuildTypes() []string {
	return []string{
		string(BuildTypeDebug),
		string(BuildTypeMinSizeRel),
		string(BuildTypeRelWithDebInfo),
		string(BuildTypeRelease),
	}
}

// Target is the platform tuple a build is performed for, supplied by the
// host platform per invocation. Only OS affects published package metadata;
// compiler and arch ride along for provenance and working-directory
// isolation.
type Target struct {
	OS        OSType    `json:"os" yaml:"os"`
	Compiler  string    `json:"compiler,omitempty" yaml:"compiler,omitempty"`
	BuildType BuildType `json:"buildType,omitempty" yaml:"buildType,omitempty"`
	Arch      string    `json:"arch,omitempty" yaml:"arch,omitempty"`
}

// Slug returns a filesystem-safe identifier for the target, used to isolate
// per-target build and output directories (e.g., "linux-amd64").
func (t Target) Slug() string {
	parts := []string{string(t.OS)}
	if t.Arch != "" {
		parts = append(parts, t.Arch)
	}
	if t.BuildType != BuildTypeDefault {
		parts = append(parts, strings.ToLower(string(t.BuildType)))
	}
	return strings.Join(parts, "-")
}

// String returns a human-readable rendering of the target tuple.
func (t Target) String() string {
	compiler := t.Compiler
	if compiler == "" {
		compiler = "default"
	}
	buildType := string(t.BuildType)
	if buildType == "" {
		buildType = "default"
	}
	arch := t.Arch
	if arch == "" {
		arch = "default"
	}
	return fmt.Sprintf("os=%s compiler=%s buildType=%s arch=%s", t.OS, compiler, buildType, arch)
}
