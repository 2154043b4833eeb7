// Package model defines the core data types shared across the wikifirst
// pipeline: the decoded wiki Page, the emitted LinkRecord, and the
// per-dump ExtractReport that aggregates records and skip accounting.
//
// Types in this package are plain data with small helper methods and no
// I/O, so every other package can depend on it without import cycles.
package model
