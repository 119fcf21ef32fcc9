package filesystem

import "strings"

// Home is the name of the root directory. There is no filesystem root
// above it: "/" and "~/" both anchor here.
const Home = "~"

// Resolve turns a path expression into a canonical path without touching
// the tree. cwd must already be canonical. A leading "~/" or "/" anchors
// expr at home, otherwise it is taken relative to cwd, so a bare "~" is a
// plain name. "." is dropped, ".." pops one segment and is a no-op at
// home. Resolve never fails and does not check that the result exists.
func Resolve(cwd, expr string) string {
	var parts []string
	switch {
	case strings.HasPrefix(expr, Home+"/"):
		expr = expr[len(Home)+1:]
	case strings.HasPrefix(expr, "/"):
		expr = expr[1:]
	default:
		parts = Segments(cwd)
	}

	for _, seg := range strings.Split(expr, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, seg)
		}
	}
	return Join(parts)
}

// Segments splits a canonical path into its segments below home. Home
// itself has none.
func Segments(canonical string) []string {
	if canonical == Home {
		return nil
	}
	rest := strings.TrimPrefix(canonical, Home+"/")
	var parts []string
	for _, seg := range strings.Split(rest, "/") {
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return parts
}

// Join is the inverse of [Segments]
func Join(parts []string) string {
	if len(parts) == 0 {
		return Home
	}
	return Home + "/" + strings.Join(parts, "/")
}

// Split separates the last segment of a canonical path from its parent.
// For home the parent is home and the name is "~".
func Split(canonical string) (parent, name string) {
	i := strings.LastIndex(canonical, "/")
	if canonical == Home || i < 0 {
		return Home, canonical
	}
	return canonical[:i], canonical[i+1:]
}
