// Package platform provides the few filesystem operations whose behavior
// differs between Unix and Windows. Permission bits are applied with chmod on
// Unix and ignored on Windows.
package platform
