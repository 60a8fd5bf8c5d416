// Package config loads dotlink's settings.
//
// Sources are layered with koanf, later ones overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, TOML or YAML by extension
//  3. DOTLINK_* environment variables, "__" separating nested keys
//  4. explicit overrides, normally the flags set on the command line
package config
