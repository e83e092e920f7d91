// Package pkgmgr knows the four supported JavaScript package managers:
// how to spell their install, run, add and create commands, how each one
// shapes a workspace, and how to make sure a usable one is present on the
// host before generation starts.
package pkgmgr
