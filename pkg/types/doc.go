// Package types defines the core types and interfaces used throughout
// firstrun. This includes the InstallerFunc and TestFunc signatures, the
// Descriptor and Record data structures, and the FS filesystem interface.
package types
