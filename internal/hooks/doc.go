// Package hooks implements the Composer lifecycle hooks of a Bolt project.
//
// InstallAssets runs after the autoloader is dumped and publishes the
// backend's css, fonts, images and scripts below the web root.
// InstallThemesAndFiles runs once after create-project and seeds the files
// and theme directories. Both locate their targets through GetDir, which asks
// the installed application first and falls back to BOLT_* environment
// variables and the bolt-* keys of composer.json's extra section.
package hooks
