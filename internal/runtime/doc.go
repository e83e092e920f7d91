// Package runtime runs external tools (node, package managers, create
// starters) on behalf of the generators. Commands are described as plain
// values so that tests can record them through a fake Runner instead of
// spawning processes.
package runtime
