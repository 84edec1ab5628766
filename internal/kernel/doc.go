// Package kernel implements the subprocess transport for the Huefy
// client. Each call spawns one instance of the platform-specific kernel
// binary, writes a single JSON command to its stdin, reads its stdout and
// stderr to completion bounded by the configured timeout, and maps
// process and protocol failures into the shared error taxonomy.
//
// The kernel binary owns the actual wire protocol to the backend; this
// package treats it as an opaque executable. The transport performs no
// retries: a process failure indicates a packaging or environment defect
// that retrying cannot fix.
package kernel
