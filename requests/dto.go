package requests

import "github.com/brettbedarf/pycommander"

// NodeRequestDTO is the JSON/YAML representation of one entry in a nodes
// file. Content is only meaningful for type "file" and defaults to "".
//
// Example nodes file:
//
//	[
//	  {"type": "dir", "path": "Projects"},
//	  {"type": "file", "path": "Projects/notes.txt", "content": "Initial project notes."}
//	]
type NodeRequestDTO struct {
	Path    string                            `json:"path" yaml:"path"`
	Type    pycommander.NodeCreateRequestType `json:"type" yaml:"type"`
	Content *string                           `json:"content,omitempty" yaml:"content,omitempty"`
}
