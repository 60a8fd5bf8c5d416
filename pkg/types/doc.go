// Package types defines the data model shared by the reconciliation engine:
// source entries and their handling modes, probed destination state, the
// run mode flags, emitted actions, and the interfaces the engine consumes
// (FS and Reporter).
package types
