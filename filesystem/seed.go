package filesystem

import "github.com/brettbedarf/pycommander"

// Contents of the default tree
const (
	PyCommanderScript = "#!/usr/bin/env python\n\nprint(\"Hello from PyCommander!\")"
	NotesText         = "Initial project notes."
	ReportText        = "This is a dummy document."
	ReadmeText        = "Welcome to PyCommander!\n\nType `help` to see a list of available commands."
)

// DefaultSeed returns the requests that build the tree every fresh process
// starts with:
//
//	~/
//	  Projects/
//	    pycommander.py
//	    notes.txt
//	  Documents/
//	    report.docx
//	  README.md
func DefaultSeed() []pycommander.NodeRequestor {
	return []pycommander.NodeRequestor{
		dirReq("Projects"),
		fileReq("Projects/pycommander.py", PyCommanderScript),
		fileReq("Projects/notes.txt", NotesText),
		dirReq("Documents"),
		fileReq("Documents/report.docx", ReportText),
		fileReq("README.md", ReadmeText),
	}
}

// NewDefaultFS creates a FileSystem seeded with [DefaultSeed]
func NewDefaultFS() *FileSystem {
	fs := NewFS()
	if err := fs.Seed(DefaultSeed()); err != nil {
		// the default seed is static and known to be consistent
		panic(err)
	}
	return fs
}

func dirReq(path string) *pycommander.DirCreateRequest {
	return &pycommander.DirCreateRequest{
		NodeRequest: pycommander.NodeRequest{Path: path, Type: pycommander.DirNodeType},
	}
}

func fileReq(path, content string) *pycommander.FileCreateRequest {
	return &pycommander.FileCreateRequest{
		NodeRequest: pycommander.NodeRequest{Path: path, Type: pycommander.FileNodeType},
		Content:     content,
	}
}
