// Package serializer provides utilities for serializing data to various
// formats and reading it back.
//
// The package supports three output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(info); err != nil {
//		return err
//	}
//
// Reading option profiles and build matrices:
//
//	matrix, err := serializer.FromFile[Matrix]("targets.yaml")
//
// The package automatically handles format inference from file extensions,
// flattening nested structures for table format, and resource cleanup via
// the Close method.
package serializer
