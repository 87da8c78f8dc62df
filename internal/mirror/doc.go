// Package mirror synchronizes a source directory tree onto a destination.
// Files are copied with github.com/otiai10/copy. Destination-only entries can
// optionally be pruned so the destination ends up as an exact mirror, and
// directories created along the way can be given a fixed mode.
package mirror
