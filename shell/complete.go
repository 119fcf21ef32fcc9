package shell

import (
	"strings"

	"github.com/brettbedarf/pycommander/filesystem"
)

// Complete returns candidates for the last word of a partially typed
// command line. The first word completes against the known verbs, later
// words against names in the directory the word points into. Candidates
// replace the whole word: "Projects/no" yields "Projects/notes.txt".
func (d *Dispatcher) Complete(cwd, line string) []string {
	cwd = canonicalCwd(cwd)

	fields := strings.Fields(line)
	word := ""
	if len(fields) > 0 && !strings.HasSuffix(line, " ") {
		word = fields[len(fields)-1]
		fields = fields[:len(fields)-1]
	}

	if len(fields) == 0 {
		var verbs []string
		for _, v := range Verbs {
			if strings.HasPrefix(v, strings.ToLower(word)) {
				verbs = append(verbs, v)
			}
		}
		return verbs
	}

	dirPart, prefix := "", word
	if i := strings.LastIndex(word, "/"); i >= 0 {
		dirPart, prefix = word[:i+1], word[i+1:]
	}
	dir := cwd
	if dirPart != "" {
		dir = filesystem.Resolve(cwd, dirPart)
	}

	d.mu.Lock()
	names := d.fs.Autocomplete(dir, prefix)
	d.mu.Unlock()

	candidates := make([]string, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, dirPart+name)
	}
	return candidates
}
