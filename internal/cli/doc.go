// Package cli defines the Cobra command tree for the forge CLI. The root
// command generates a project; doctor and version are registered from
// their own files. Commands only handle flags, prompts and output and
// delegate the work to the internal packages.
package cli
