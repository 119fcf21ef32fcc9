// Package pycommander contains the domain types and interfaces shared by the
// fake terminal's file system, command dispatcher, translator and transport.
package pycommander

import "context"

// FileSystemOperator is the set of tree operations the command dispatcher
// needs. Every path argument is canonical (see filesystem.Resolve) except
// where noted.
type FileSystemOperator interface {
	// List returns child names of a directory; directories carry a "/" suffix
	List(path string) ([]string, error)

	// Mkdir creates an empty directory called name inside parentPath
	Mkdir(parentPath, name string) error

	// ReadFile returns the content of a file
	ReadFile(path string) (string, error)

	// Remove deletes the node at path along with its descendants
	Remove(path string) error

	// Autocomplete returns child names of dirPath starting with prefix
	Autocomplete(dirPath, prefix string) []string

	// ChangeDirectory resolves expr against cwd and returns the result if it
	// is an existing directory. expr may be relative.
	ChangeDirectory(cwd, expr string) (string, error)
}

// Translator turns a natural language request into a single command line.
// Implementations must be safe for concurrent use.
type Translator interface {
	Translate(ctx context.Context, prompt string) (string, error)
}
