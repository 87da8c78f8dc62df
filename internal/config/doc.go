// Package config reads a Bolt project's .bolt.yml (or .bolt.yaml / .bolt.json)
// file. Only the "paths" section matters to the hooks: it overrides where the
// application keeps its web root, files and themes.
package config
