// Package config resolves the project configuration. Built-in defaults are
// overlaid by an optional, read-only ~/.forge/config.yaml and FORGE_*
// environment variables, then by interactive answers and finally by
// command-line flags. Cross-field coercions run last.
package config
