// Package manifest reads the project's Composer manifest (composer.json) and
// validates the bolt-* keys of its "extra" section against an embedded JSON
// Schema. The hooks read their fallback options from that section.
package manifest
