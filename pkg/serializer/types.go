// Copyright (c) 2026, the sockpp project authors.  All rights reserved.
//
// Licensed under the BSD 3-Clause License. See the LICENSE file in the
// repository root for the full license text.

package serializer

// Serializer is an interface for serializing structured data. Implementations
// can serialize to various formats such as JSON, YAML, or tabular text.
type Serializer interface {
	Serialize(v any) error
}

// Closer is an optional interface that Serializers can implement if they
// need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
