// Copyright (c) 2026, the sockpp project authors.  All rights reserved.
//
// Licensed under the BSD 3-Clause License. See the LICENSE file in the
// repository root for the full license text.

package recipe

import "github.com/fpagliughi/sockpkg/pkg/version"

// Source identifies where the packaged library's sources are retrieved from.
// Retrieval itself is the host platform's job; the recipe only records
// provenance.
type Source struct {
	URL      string `json:"url" yaml:"url"`
	Revision string `json:"revision" yaml:"revision"`
}

// Identity holds the immutable identity metadata of the packaged library.
// It is set once at authoring time and used only for presentation,
// provenance, and composing published library names.
type Identity struct {
	Name        string          `json:"name" yaml:"name"`
	Version     version.Version `json:"version" yaml:"version"`
	Description string          `json:"description" yaml:"description"`
	License     string          `json:"license" yaml:"license"`
	Author      string          `json:"author" yaml:"author"`
	Source      Source          `json:"source" yaml:"source"`
}

// Sockpp returns the identity of the sockpp library recipe.
func Sockpp() Identity {
	return Identity{
		Name:        "sockpp",
		Version:     version.MustParse("0.7"),
		Description: "Modern C++ socket library.",
		License:     "BSD-3-Clause",
		Author:      "fpagliughi",
		Source: Source{
			URL:      "https://github.com/fpagliughi/sockpp.git",
			Revision: "develop",
		},
	}
}
