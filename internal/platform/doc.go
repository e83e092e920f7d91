// Package platform provides cross-platform helpers for locating executables
// and home-directory tooling. On Windows it accounts for the .exe, .cmd and
// .bat launchers that package managers install; elsewhere it checks the
// executable bit.
package platform
