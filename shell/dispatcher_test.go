package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brettbedarf/pycommander"
	"github.com/brettbedarf/pycommander/filesystem"
	"github.com/brettbedarf/pycommander/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func exec(d *Dispatcher, command, cwd string) pycommander.CommandResponse {
	return d.Execute(context.Background(), pycommander.CommandRequest{Command: command, Cwd: cwd})
}

func requireOutput(t *testing.T, resp pycommander.CommandResponse) string {
	t.Helper()
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Output)
	return *resp.Output
}

func TestDispatcher_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		command string
		cwd     string
		output  string
		err     string
	}{
		{"ls home", "ls", "~", "Projects/\nDocuments/\nREADME.md", ""},
		{"ls arg", "ls Projects", "~", "pycommander.py\nnotes.txt", ""},
		{"ls absolute", "ls /Documents", "~/Projects", "report.docx", ""},
		{"ls missing", "ls nope", "~", "", "ls: cannot access 'nope': No such file or directory"},
		{"ls file", "ls README.md", "~", "", "ls: cannot access 'README.md': No such file or directory"},
		{"pwd", "pwd", "~/Projects", "~/Projects", ""},
		{"pwd canonicalizes cwd", "pwd", "~/Projects/./", "~/Projects", ""},
		{"cd no arg", "cd", "~/Projects", "", ""},
		{"cd missing", "cd nope", "~", "", "cd: no such file or directory: nope"},
		{"cd file", "cd README.md", "~", "", "cd: no such file or directory: README.md"},
		{"cat", "cat README.md", "~", filesystem.ReadmeText, ""},
		{"cat relative", "cat ../README.md", "~/Projects", filesystem.ReadmeText, ""},
		{"cat missing operand", "cat", "~", "", "cat: missing operand"},
		{"cat missing", "cat nope", "~", "", "cat: nope: No such file or directory"},
		{"cat dir", "cat Projects", "~", "", "cat: Projects: Is a directory"},
		{"cat through file", "cat README.md/x", "~", "", "cat: README.md/x: Not a directory"},
		{"mkdir missing operand", "mkdir", "~", "", "mkdir: missing operand"},
		{"mkdir exists", "mkdir Projects", "~", "", "mkdir: cannot create directory 'Projects': File exists"},
		{"mkdir over file", "mkdir README.md", "~", "", "mkdir: cannot create directory 'README.md': File exists"},
		{"mkdir home", "mkdir /", "~/Projects", "", "mkdir: cannot create directory '/': File exists"},
		{"mkdir dot at home", "mkdir .", "~", "", "mkdir: cannot create directory '.': File exists"},
		{"mkdir bad parent", "mkdir a/b", "~", "", "mkdir: cannot create directory 'a/b': No such file or directory"},
		{"rm missing operand", "rm", "~", "", "rm: missing operand"},
		{"rm missing", "rm nope", "~", "", "rm: cannot remove 'nope': No such file or directory"},
		{"rm home", "rm /", "~", "", "rm: cannot remove '/': No such file or directory"},
		{"rm tilde name", "rm ~", "~", "", "rm: cannot remove '~': No such file or directory"},
		{"cat tilde name", "cat ~", "~/Projects", "", "cat: ~: No such file or directory"},
		{"pwd empty cwd", "pwd", "", "~", ""},
		{"echo", "echo  hello   world", "~", "hello world", ""},
		{"echo empty", "echo", "~", "", ""},
		{"help", "help", "~", HelpText, ""},
		{"verb case", "PWD", "~", "~", ""},
		{"blank", "   ", "~", "", ""},
		{"unknown", "frobnicate now", "~", "", "frobnicate now: command not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := NewDispatcher(filesystem.NewDefaultFS(), nil)

			resp := exec(d, tt.command, tt.cwd)

			if tt.err != "" {
				assert.Equal(t, tt.err, resp.Error)
				assert.Nil(t, resp.Output)
				return
			}
			assert.Equal(t, tt.output, requireOutput(t, resp))
		})
	}
}

func TestDispatcher_Cd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cwd    string
		arg    string
		newCwd string
	}{
		{"~", "Projects", "~/Projects"},
		{"~/Projects", "..", "~"},
		{"~", "..", "~"},
		{"~/Projects", "/Documents", "~/Documents"},
		{"~/Projects", "~", "~"},
		{"~/Projects", "~/", "~"},
		{"~/Projects", ".", "~/Projects"},
	}

	for _, tt := range tests {
		t.Run(tt.cwd+" "+tt.arg, func(t *testing.T) {
			t.Parallel()
			d := NewDispatcher(filesystem.NewDefaultFS(), nil)

			resp := exec(d, "cd "+tt.arg, tt.cwd)

			assert.Empty(t, resp.Error)
			assert.Nil(t, resp.Output)
			assert.Equal(t, tt.newCwd, resp.NewCwd)
		})
	}
}

func TestDispatcher_MkdirThenLs(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(filesystem.NewDefaultFS(), nil)

	requireOutput(t, exec(d, "mkdir test", "~"))
	requireOutput(t, exec(d, "mkdir ../Documents/archive", "~/Projects"))

	assert.Equal(t, "Projects/\nDocuments/\nREADME.md\ntest/", requireOutput(t, exec(d, "ls", "~")))
	assert.Equal(t, "report.docx\narchive/", requireOutput(t, exec(d, "ls /Documents", "~")))
	assert.Equal(t, "~/test", exec(d, "cd test", "~").NewCwd)
}

func TestDispatcher_TildeIsAName(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(filesystem.NewDefaultFS(), nil)

	requireOutput(t, exec(d, "mkdir ./~", "~/Projects"))
	requireOutput(t, exec(d, "mkdir ~", "~"))

	assert.Equal(t, "pycommander.py\nnotes.txt\n~/", requireOutput(t, exec(d, "ls", "~/Projects")))
	assert.Equal(t, "Projects/\nDocuments/\nREADME.md\n~/", requireOutput(t, exec(d, "ls", "~")))
	// cd keeps the shell shortcut for home
	assert.Equal(t, "~", exec(d, "cd ~", "~/Projects").NewCwd)
	assert.Equal(t, "~/Projects/~", exec(d, "cd ./~", "~/Projects").NewCwd)
}

func TestDispatcher_Rm(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(filesystem.NewDefaultFS(), nil)

	requireOutput(t, exec(d, "rm Projects", "~"))
	assert.Equal(t, "Documents/\nREADME.md", requireOutput(t, exec(d, "ls", "~")))

	requireOutput(t, exec(d, "rm report.docx", "~/Documents"))
	assert.Equal(t, "", requireOutput(t, exec(d, "ls Documents", "~")))

	assert.Equal(t, "cd: no such file or directory: Projects", exec(d, "cd Projects", "~").Error)
}

func TestDispatcher_Date(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(filesystem.NewDefaultFS(), nil)
	d.now = func() time.Time {
		return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	}

	assert.Equal(t, "Tue Mar  5 14:07:09 UTC 2024", requireOutput(t, exec(d, "date", "~")))
}

func TestDispatcher_Clear(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(filesystem.NewDefaultFS(), nil)

	resp := exec(d, "clear", "~/Projects")

	assert.True(t, resp.Clear)
	assert.Nil(t, resp.Output)
	assert.Empty(t, resp.Error)
}

func TestDispatcher_Executed(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(filesystem.NewDefaultFS(), nil)
	exec(d, "pwd", "~")
	exec(d, "nope", "~")

	assert.Equal(t, uint64(2), d.Executed())
}

func TestDispatcher_AI(t *testing.T) {
	t.Parallel()

	tr := &mocks.MockTranslator{}
	tr.On("Translate", mock.Anything, "make a folder called test").Return("mkdir test", nil)
	tr.On("Translate", mock.Anything, "where am i").Return("pwd", nil)
	d := NewDispatcher(filesystem.NewDefaultFS(), tr)

	resp := exec(d, "ai make a folder called test", "~")
	assert.Equal(t, "mkdir test", resp.AICommand)
	requireOutput(t, resp)

	resp = exec(d, "AI where   am i", "~/test")
	assert.Equal(t, "pwd", resp.AICommand)
	assert.Equal(t, "~/test", requireOutput(t, resp))

	tr.AssertExpectations(t)
}

func TestDispatcher_AI_NotRetranslated(t *testing.T) {
	t.Parallel()

	tr := &mocks.MockTranslator{}
	tr.On("Translate", mock.Anything, "loop").Return("ai loop", nil).Once()
	d := NewDispatcher(filesystem.NewDefaultFS(), tr)

	resp := exec(d, "ai loop", "~")

	assert.Equal(t, "ai loop: command not found", resp.Error)
	assert.Equal(t, "ai loop", resp.AICommand)
	tr.AssertNumberOfCalls(t, "Translate", 1)
}

func TestDispatcher_AI_Errors(t *testing.T) {
	t.Parallel()

	tr := &mocks.MockTranslator{}
	tr.On("Translate", mock.Anything, "").Return("", errors.New("Prompt cannot be empty."))
	d := NewDispatcher(filesystem.NewDefaultFS(), tr)

	resp := exec(d, "ai", "~")
	assert.Equal(t, "AI Error: Prompt cannot be empty.", resp.Error)
	assert.Empty(t, resp.AICommand)

	resp = exec(NewDispatcher(filesystem.NewDefaultFS(), nil), "ai list files", "~")
	assert.Equal(t, "AI Error: AI translation is not configured.", resp.Error)
}

func TestDispatcher_AI_TranslatesOutsideLock(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(filesystem.NewDefaultFS(), nil)
	tr := &mocks.MockTranslator{}
	tr.On("Translate", mock.Anything, "look").Return(func(ctx context.Context, prompt string) string {
		// would deadlock if the dispatcher held its lock while translating
		exec(d, "mkdir seen", "~")
		return "ls"
	}, nil)
	d.translator = tr

	resp := exec(d, "ai look", "~")

	assert.Equal(t, "Projects/\nDocuments/\nREADME.md\nseen/", requireOutput(t, resp))
}

func TestDispatcher_UsesOperator(t *testing.T) {
	t.Parallel()

	fs := &mocks.MockFileSystem{}
	fs.On("ReadFile", "~/a/b.txt").Return("", filesystem.ErrIsADirectory)
	fs.On("Mkdir", "~/a", "c").Return(nil)
	fs.On("Remove", "~/x").Return(errors.New("boom"))
	d := NewDispatcher(fs, nil)

	assert.Equal(t, "cat: b.txt: Is a directory", exec(d, "cat b.txt", "~/a").Error)
	requireOutput(t, exec(d, "mkdir c", "~/a"))
	assert.Equal(t, "rm: cannot remove '../x': No such file or directory", exec(d, "rm ../x", "~/a").Error)

	fs.AssertExpectations(t)
}
