// Package app loads the installed Bolt application far enough to answer one
// question: where does it keep a named resource (web root, files, themes)?
//
// A Loader only considers the application available once Composer has
// generated the bootstrap under the vendor directory. Until then every lookup
// reports Unavailable, and callers fall back to static options.
package app
