package filesystem

import (
	"slices"
	"strings"
)

// Node is either a *File or a *Directory. The set is closed; switch on the
// concrete type.
type Node interface {
	// Name returns the node's name (last path component)
	Name() string
	IsDir() bool

	node()
}

// File is a leaf holding text content
type File struct {
	name    string
	content string
}

func NewFile(name, content string) *File {
	return &File{name: name, content: content}
}

func (f *File) Name() string    { return f.name }
func (f *File) IsDir() bool     { return false }
func (f *File) Content() string { return f.content }
func (f *File) node()           {}

// Directory holds uniquely named children. Names are kept in insertion
// order so listings are stable.
type Directory struct {
	name     string
	children map[string]Node
	order    []string
}

func NewDirectory(name string) *Directory {
	return &Directory{
		name:     name,
		children: make(map[string]Node),
	}
}

func (d *Directory) Name() string { return d.name }
func (d *Directory) IsDir() bool  { return true }
func (d *Directory) node()        {}

// GetChild returns a child node by name
func (d *Directory) GetChild(name string) (child Node, ok bool) {
	child, ok = d.children[name]
	return
}

// AddChild links child under d. Returns false without changes if the name
// is already taken.
func (d *Directory) AddChild(child Node) bool {
	name := child.Name()
	if _, exists := d.children[name]; exists {
		return false
	}
	d.children[name] = child
	d.order = append(d.order, name)
	return true
}

// RemoveChild unlinks a child and with it the whole subtree below it
func (d *Directory) RemoveChild(name string) bool {
	if _, exists := d.children[name]; !exists {
		return false
	}
	delete(d.children, name)
	if i := slices.Index(d.order, name); i >= 0 {
		d.order = slices.Delete(d.order, i, i+1)
	}
	return true
}

// Children returns the child nodes in insertion order in a new slice
func (d *Directory) Children() []Node {
	children := make([]Node, 0, len(d.order))
	for _, name := range d.order {
		children = append(children, d.children[name])
	}
	return children
}

// ChildNames returns child names in insertion order, filtered to those
// starting with prefix. An empty prefix matches everything.
func (d *Directory) ChildNames(prefix string) []string {
	names := make([]string, 0, len(d.order))
	for _, name := range d.order {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names
}

// Len returns the number of direct children
func (d *Directory) Len() int {
	return len(d.order)
}
