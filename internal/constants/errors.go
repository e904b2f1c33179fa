package constants

import "errors"

// Input errors.
var (
	ErrNoInput           = errors.New("no input: pass a file or pipe a document on stdin")
	ErrEmptyCriteria     = errors.New("criteria produced no filter")
	ErrInvalidOutput     = errors.New("invalid output format, expected table, json, yaml or plain")
	ErrConflictingQuery  = errors.New("--q and --criteria cannot be combined")
	ErrNegativePageValue = errors.New("limit and offset must not be negative")
)

// Configuration errors.
var (
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidConfigValue = errors.New("invalid configuration value")
)

// File system errors.
var (
	ErrNotRegularFile             = errors.New("path is not a regular file")
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
)
