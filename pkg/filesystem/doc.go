// Package filesystem provides filesystem implementations for dotlink.
//
// Every implementation satisfies types.FS on top of afero, so production code
// runs against the OS filesystem while tests and dry runs can swap in a
// read-only or in-memory layer.
package filesystem
