// Package scaffold turns manifests into files. It embeds the server-entry,
// ORM and mobile templates the generators select from, and its
// Materializer performs the writes (or, in dry-run, logs them) while
// refusing any path that escapes the assigned root.
package scaffold
