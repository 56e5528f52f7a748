package models

import "errors"

// Error taxonomy shared by every stage. Callers match with errors.Is.
var (
	// ErrInvalidArgument marks a rejected generation parameter. Nothing is
	// written to disk once it is returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO marks a failure to create the output directory or to write
	// the output file.
	ErrIO = errors.New("io error")
)
