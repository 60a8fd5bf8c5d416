// Package testutil provides utilities for testing dotlink components.
//
// Key components:
//   - TestEnvironment: an isolated dotfiles root and home directory under
//     t.TempDir, with HOME and the XDG variables pointed inside it
//   - FileTree: declarative source tree setup
//   - Recorder: a types.Reporter that keeps every action and command line
//   - Snapshot: a listing of a directory tree used to prove a run left the
//     filesystem untouched
//
// All test data should be defined inline, not in external files.
package testutil
