// Package defaults centralizes timeout constants used across the packaging
// tool. Keeping them in one place makes the operational envelope auditable
// and avoids magic durations scattered through call sites.
package defaults
