// Package paths maps source-tree paths to their home directory destinations
// and holds the home directory helpers shared by the CLI and the engine.
//
// The mapping rule is deliberately small: strip the source root, put a dot in
// front of the first remaining segment, join onto the home directory.
//
//	tmux.conf             -> ~/.tmux.conf
//	rbenv/default-gems    -> ~/.rbenv/default-gems
//	gitconfig._no-link    -> ~/.gitconfig   (copy-on-install entries)
package paths
