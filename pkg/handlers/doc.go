// Package handlers implements the two reconciliation state machines.
//
// A ModeHandler is chosen once per run: InstallHandler creates links, copies
// and runs install scripts; UninstallHandler removes what install created.
// Both split the work into Resolve, which only reads the destination and
// decides on an Action, and Apply, which performs the mutations that Action
// stands for through the mutate package. Under dry-run Resolve is unchanged
// and Apply only describes.
package handlers
