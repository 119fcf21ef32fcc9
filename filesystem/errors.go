package filesystem

import "errors"

// Expected failures of tree operations. Operations wrap these with the
// offending path; test with errors.Is.
var (
	// ErrNotFound is returned when a path does not resolve to any node
	ErrNotFound = errors.New("no such file or directory")
	// ErrNotADirectory is returned when a directory was required but a file was found
	ErrNotADirectory = errors.New("not a directory")
	// ErrIsADirectory is returned when a file was required but a directory was found
	ErrIsADirectory = errors.New("is a directory")
	// ErrAlreadyExists is returned when a create target collides with an existing child
	ErrAlreadyExists = errors.New("file exists")
	// ErrInvalidName is returned when a new entry's name could never be
	// reached by a path
	ErrInvalidName = errors.New("invalid argument")
)
