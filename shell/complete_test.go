package shell

import (
	"testing"

	"github.com/brettbedarf/pycommander/filesystem"
	"github.com/stretchr/testify/assert"
)

func TestDispatcher_Complete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cwd  string
		line string
		want []string
	}{
		{"empty line", "~", "", Verbs},
		{"verb prefix", "~", "c", []string{"cd", "cat", "clear"}},
		{"verb prefix upper", "~", "M", []string{"mkdir"}},
		{"arg in cwd", "~", "cd P", []string{"Projects"}},
		{"arg all", "~", "ls ", []string{"Projects", "Documents", "README.md"}},
		{"arg nested", "~", "cat Projects/n", []string{"Projects/notes.txt"}},
		{"arg absolute", "~/Projects", "cat /Doc", []string{"/Documents"}},
		{"arg parent", "~/Projects", "cat ../R", []string{"../README.md"}},
		{"arg under file", "~", "cat README.md/", []string{}},
		{"no match", "~", "cd zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := NewDispatcher(filesystem.NewDefaultFS(), nil)

			got := d.Complete(tt.cwd, tt.line)

			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
