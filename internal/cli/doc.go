// Package cli defines the Cobra command tree for the bolthooks binary. Each
// file registers one command with the root command. Commands build a
// hooks.Event from the project on disk and delegate to the hooks package.
package cli
