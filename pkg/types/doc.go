// Package types defines the core types and interfaces shared across
// lazy-scripts: the filesystem abstraction and parsed script metadata.
package types
