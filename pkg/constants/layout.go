// Package constants provides the reserved names of the source tree layout.
// This package has no dependencies to avoid circular imports.
package constants

// These names are part of the on-disk contract with existing dotfile
// repositories and must not change.
const (
	// NoRecurseMarker turns the directory containing it into a single
	// linkable unit. Only its presence matters.
	NoRecurseMarker = ".no-recurse"

	// InstallScriptName is executed during install instead of being linked.
	InstallScriptName = "_install.sh"

	// NoLinkSuffix marks a file that is copied instead of linked. It is
	// stripped from the destination name.
	NoLinkSuffix = "._no-link"

	// DestinationPrefix is prepended to the first path segment under the
	// source root.
	DestinationPrefix = "."
)

// Environment variables exported to install scripts
const (
	EnvScriptSourceRoot = "DOTLINK_SOURCE_ROOT"
	EnvScriptHome       = "DOTLINK_HOME"
)
