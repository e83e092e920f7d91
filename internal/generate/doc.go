// Package generate turns a resolved configuration into a project on disk.
//
// A Dispatcher routes the configuration to one of the project generators
// (frontend, backend, mobile) or to the Composer, which lays out a
// workspace and runs the generators for each member. Generators build a
// manifest of files in memory, rewrite it with ordered patches and hand it
// to the scaffold materializer. External scaffolders and package managers
// run through a runtime.Runner.
package generate
