// Copyright (c) 2026, the sockpp project authors.  All rights reserved.
//
// Licensed under the BSD 3-Clause License. See the LICENSE file in the
// repository root for the full license text.

package recipe

import "github.com/fpagliughi/sockpkg/pkg/errors"

// PackageInfo is the metadata a consumer needs to link against the packaged
// library: paths relative to the package root, library names, and
// platform-specific system library dependencies.
type PackageInfo struct {
	IncludeDirs []string `json:"includeDirs" yaml:"includeDirs"`
	LibDirs     []string `json:"libDirs" yaml:"libDirs"`
	Libs        []string `json:"libs" yaml:"libs"`
	SystemLibs  []string `json:"systemLibs,omitempty" yaml:"systemLibs,omitempty"`
}

// libSpec describes the platform-dependent parts of the published metadata.
type libSpec struct {
	libSuffix  string
	systemLibs []string
}

// packageLibs is the dispatch table for the metadata publisher, keyed by the
// closed set of supported operating systems. Adding a platform means adding
// a row here, nothing else.
var packageLibs = map[OSType]libSpec{
	// Windows links the static archive and needs Winsock.
	OSWindows: {libSuffix: "-static", systemLibs: []string{"ws2_32"}},
	OSLinux:   {},
}

// PackageInfoFor publishes the package metadata for the given identity and
// target operating system. It is pure and side-effect-free: no build system
// interaction, queryable at any point in the lifecycle, including before a
// build has run.
//
// Operating systems outside the dispatch table fail with an
// UNSUPPORTED_PLATFORM error rather than defaulting silently.
func PackageInfoFor(id Identity, os OSType) (PackageInfo, error) {
	spec, ok := packageLibs[os]
	if !ok {
		return PackageInfo{}, errors.Newf(errors.ErrCodeUnsupportedPlatform,
			"no package info for operating system %q, supported: %v", string(os), SupportedOSTypes())
	}

	return PackageInfo{
		IncludeDirs: []string{"include"},
		LibDirs:     []string{"lib"},
		Libs:        []string{id.Name + spec.libSuffix},
		SystemLibs:  spec.systemLibs,
	}, nil
}
