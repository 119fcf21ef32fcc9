package filesystem

import (
	"fmt"
	"strings"

	"github.com/brettbedarf/pycommander"
	"github.com/brettbedarf/pycommander/internal/util"
)

// FileSystem owns one in-memory directory tree rooted at [Home].
//
// It does no locking of its own. Callers sharing a FileSystem between
// goroutines must serialize access themselves.
type FileSystem struct {
	root *Directory
}

var _ pycommander.FileSystemOperator = (*FileSystem)(nil)

// NewFS creates a FileSystem holding only an empty home directory
func NewFS() *FileSystem {
	return &FileSystem{root: NewDirectory(Home)}
}

// Root returns the home directory node
func (fs *FileSystem) Root() *Directory {
	return fs.root
}

// Lookup finds the node at a canonical path. It fails with ErrNotFound at
// the first missing segment, or ErrNotADirectory when a file sits where a
// directory is needed to continue. There are no partial results.
func (fs *FileSystem) Lookup(path string) (Node, error) {
	if path == Home {
		return fs.root, nil
	}

	var cur Node = fs.root
	for _, name := range strings.Split(strings.TrimPrefix(path, Home+"/"), "/") {
		dir, ok := cur.(*Directory)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
		}
		child, ok := dir.GetChild(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		cur = child
	}
	return cur, nil
}

// lookupDir is [FileSystem.Lookup] restricted to directories
func (fs *FileSystem) lookupDir(path string) (*Directory, error) {
	node, err := fs.Lookup(path)
	if err != nil {
		return nil, err
	}
	dir, ok := node.(*Directory)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}
	return dir, nil
}

// lookupParent returns the directory that holds the last segment of path
// along with that segment. A path without a parent segment falls back to
// home.
func (fs *FileSystem) lookupParent(path string) (*Directory, string, error) {
	parentPath, name := Split(path)
	if parentPath == Home {
		return fs.root, name, nil
	}
	parent, err := fs.lookupDir(parentPath)
	if err != nil {
		return nil, name, err
	}
	return parent, name, nil
}

// List returns the child names of the directory at path in insertion
// order. Directory names carry a trailing "/".
func (fs *FileSystem) List(path string) ([]string, error) {
	dir, err := fs.lookupDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, dir.Len())
	for _, child := range dir.Children() {
		if child.IsDir() {
			names = append(names, child.Name()+"/")
		} else {
			names = append(names, child.Name())
		}
	}
	return names, nil
}

// Mkdir inserts an empty directory called name into the directory at
// parentPath. An existing child of any type with that name is left alone
// and ErrAlreadyExists is returned. Names that no path can reach ("", ".",
// ".." or anything containing "/") fail with ErrInvalidName.
func (fs *FileSystem) Mkdir(parentPath, name string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	parent, err := fs.lookupDir(parentPath)
	if err != nil {
		return err
	}
	if !parent.AddChild(NewDirectory(name)) {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, Join(append(Segments(parentPath), name)))
	}

	logger := util.GetLogger("FS.Mkdir")
	logger.Debug().Str("parent", parentPath).Str("name", name).Msg("Created directory")
	return nil
}

// ReadFile returns the content of the file at path. Reading a directory
// fails with ErrIsADirectory, which is distinct from ErrNotFound.
func (fs *FileSystem) ReadFile(path string) (string, error) {
	node, err := fs.Lookup(path)
	if err != nil {
		return "", err
	}
	switch n := node.(type) {
	case *File:
		return n.Content(), nil
	case *Directory:
		return "", fmt.Errorf("%w: %s", ErrIsADirectory, path)
	default:
		panic(fmt.Sprintf("unexpected node type %T", node))
	}
}

// Remove unlinks the node at path from its parent, discarding everything
// below it. Every failure, including an unresolvable parent, is reported
// as ErrNotFound. Home itself can never be removed.
func (fs *FileSystem) Remove(path string) error {
	if path == Home {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	parent, name, err := fs.lookupParent(path)
	if err != nil || !parent.RemoveChild(name) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	logger := util.GetLogger("FS.Remove")
	logger.Debug().Str("path", path).Msg("Removed node")
	return nil
}

// Autocomplete returns the names (without "/" suffix) of the children of
// dirPath that start with prefix. Anything but an existing directory gives
// an empty result.
func (fs *FileSystem) Autocomplete(dirPath, prefix string) []string {
	dir, err := fs.lookupDir(dirPath)
	if err != nil {
		return []string{}
	}
	return dir.ChildNames(prefix)
}

// ChangeDirectory resolves expr against cwd and returns the canonical path
// if it names an existing directory.
func (fs *FileSystem) ChangeDirectory(cwd, expr string) (string, error) {
	path := Resolve(cwd, expr)
	if _, err := fs.lookupDir(path); err != nil {
		return "", err
	}
	return path, nil
}

// AddDirNode creates every missing directory along the request's path and
// returns the leaf. Like `mkdir -p` it does not fail when the leaf already
// exists, but it does fail if a file is in the way.
func (fs *FileSystem) AddDirNode(req *pycommander.DirCreateRequest) (*Directory, error) {
	return fs.mkdirAll(req.Path, Segments(Resolve(Home, req.Path)))
}

// mkdirAll walks segments down from home, creating what is missing. path
// is only used for errors and logs.
func (fs *FileSystem) mkdirAll(path string, segments []string) (*Directory, error) {
	logger := util.GetLogger("AddDirNode")

	cur := fs.root
	newCnt := 0
	for _, name := range segments {
		child, ok := cur.GetChild(name)
		if !ok {
			dir := NewDirectory(name)
			cur.AddChild(dir)
			newCnt++
			cur = dir
			continue
		}
		dir, ok := child.(*Directory)
		if !ok {
			err := fmt.Errorf("%w: %s", ErrNotADirectory, path)
			logger.Error().Err(err).Str("path", path).Msg("Failed to create directory")
			return nil, err
		}
		cur = dir
	}
	if newCnt > 0 {
		logger.Debug().Str("path", path).Int("created", newCnt).Msg("Created new dir(s)")
	}
	return cur, nil
}

// AddFileNode adds a file with fixed content, creating any missing
// ancestor directories. If a node already exists at the path it returns
// ErrAlreadyExists.
func (fs *FileSystem) AddFileNode(req *pycommander.FileCreateRequest) (*File, error) {
	logger := util.GetLogger("AddFileNode")

	path := Resolve(Home, req.Path)
	if path == Home {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, req.Path)
	}
	dirPath, name := Split(path)
	parent, err := fs.mkdirAll(dirPath, Segments(dirPath))
	if err != nil {
		logger.Error().Err(err).Str("path", req.Path).Msg("Failed to create file's ancestor directory(s)")
		return nil, err
	}

	file := NewFile(name, req.Content)
	if !parent.AddChild(file) {
		err := fmt.Errorf("%w: %s", ErrAlreadyExists, req.Path)
		logger.Error().Err(err).Str("path", req.Path).Msg("Failed to create file")
		return nil, err
	}
	logger.Debug().Str("path", req.Path).Msg("Added new file node")
	return file, nil
}

// Seed applies node create requests in order. It stops at the first
// request that fails.
func (fs *FileSystem) Seed(reqs []pycommander.NodeRequestor) error {
	for _, req := range reqs {
		var err error
		switch r := req.(type) {
		case *pycommander.DirCreateRequest:
			_, err = fs.AddDirNode(r)
		case *pycommander.FileCreateRequest:
			_, err = fs.AddFileNode(r)
		default:
			err = fmt.Errorf("unknown node type: %s", req.GetType())
		}
		if err != nil {
			return fmt.Errorf("seed %q: %w", req.GetPath(), err)
		}
	}
	return nil
}

// validName reports whether name can be reached as a path segment
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.Contains(name, "/")
}
