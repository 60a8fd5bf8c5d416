// Package core implements the reconciliation engine for dotlink.
//
// A run walks the source tree depth first. Every entry is classified into a
// handling mode, mapped to its destination under the home directory, and
// the destination is probed. The handler for the current command then turns
// (mode, state, run mode) into an Action, which is reported and applied
// before the walk moves on.
//
// # Ordering
//
// Within one directory, siblings are visited in three groups:
//
//  1. non-directories, sorted by name
//  2. the directory's _install.sh, install only
//  3. directories, sorted by name, each linked when opaque or descended
//
// so a script always sees the files next to it already in place, and runs
// before anything below it is touched.
//
// # Statelessness
//
// Nothing is remembered between runs. Every decision is derived again from
// what is on disk, which is what makes install idempotent and lets
// uninstall undo an install it never witnessed.
//
// # Errors
//
// The first error aborts the run. Mutations applied before it stay in
// place; running again after fixing the cause picks up where it stopped.
package core
