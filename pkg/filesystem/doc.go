// Package filesystem provides the FS abstraction cgrc reads rule files
// through: the OS filesystem in production and afero's in-memory
// filesystem in tests.
package filesystem
