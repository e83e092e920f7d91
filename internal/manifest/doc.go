// Package manifest holds the in-memory file set a generator intends to
// write in one invocation. Entries are keyed by slash-separated path
// relative to the generator's root; a later entry for the same path
// replaces the earlier one. Patches rewrite entries in fixed phases, and
// Package models the package.json descriptor, validated against an
// embedded JSON schema before it is encoded.
package manifest
