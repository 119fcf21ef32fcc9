// Package shell interprets PyCommander command lines against a virtual
// file system and maps file system failures to familiar shell error text.
package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brettbedarf/pycommander"
	"github.com/brettbedarf/pycommander/filesystem"
	"github.com/brettbedarf/pycommander/internal/util"
)

// DateLayout matches the output of a Unix `date`
const DateLayout = "Mon Jan _2 15:04:05 MST 2006"

// Dispatcher executes command lines. It holds no per-client state: the
// caller passes the current directory with every command and applies any
// returned NewCwd itself.
//
// The file system is not safe for concurrent use, so every call into it is
// serialized by the dispatcher.
type Dispatcher struct {
	fs         pycommander.FileSystemOperator
	translator pycommander.Translator
	mu         sync.Mutex
	now        func() time.Time
	executed   atomic.Uint64
}

// NewDispatcher creates a Dispatcher over fs. A nil translator disables the
// `ai` command.
func NewDispatcher(fs pycommander.FileSystemOperator, translator pycommander.Translator) *Dispatcher {
	return &Dispatcher{
		fs:         fs,
		translator: translator,
		now:        time.Now,
	}
}

// Executed returns the number of command lines handled so far
func (d *Dispatcher) Executed() uint64 {
	return d.executed.Load()
}

// Execute runs one command line. Expected failures are reported in the
// response's Error field, never as a Go error.
func (d *Dispatcher) Execute(ctx context.Context, req pycommander.CommandRequest) pycommander.CommandResponse {
	logger := util.GetLogger("Dispatcher.Execute")
	d.executed.Add(1)

	cwd := canonicalCwd(req.Cwd)
	verb, args := parse(req.Command)
	logger.Trace().Str("verb", verb).Strs("args", args).Str("cwd", cwd).Msg("Dispatching command")

	if verb == "ai" {
		return d.ai(ctx, strings.Join(args, " "), cwd)
	}
	return d.run(strings.TrimSpace(req.Command), verb, args, cwd)
}

// canonicalCwd cleans up a client supplied cwd. Home is kept as is, any
// other value is resolved from home.
func canonicalCwd(cwd string) string {
	if cwd == filesystem.Home {
		return cwd
	}
	return filesystem.Resolve(filesystem.Home, cwd)
}

// parse splits a command line on spaces, dropping empty tokens. The verb is
// lowercased; arguments are kept verbatim.
func parse(line string) (verb string, args []string) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' })
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func (d *Dispatcher) ai(ctx context.Context, prompt, cwd string) pycommander.CommandResponse {
	logger := util.GetLogger("Dispatcher.ai")

	if d.translator == nil {
		return failure("AI Error: AI translation is not configured.")
	}
	cmd, err := d.translator.Translate(ctx, prompt)
	if err != nil {
		logger.Warn().Err(err).Str("prompt", prompt).Msg("Translation failed")
		return failure("AI Error: " + err.Error())
	}
	logger.Debug().Str("prompt", prompt).Str("command", cmd).Msg("Translated prompt")

	verb, args := parse(cmd)
	var resp pycommander.CommandResponse
	if verb == "ai" {
		// a translation is never translated again
		resp = failure(fmt.Sprintf("%s: command not found", cmd))
	} else {
		resp = d.run(cmd, verb, args, cwd)
	}
	resp.AICommand = cmd
	return resp
}

func (d *Dispatcher) run(line, verb string, args []string, cwd string) pycommander.CommandResponse {
	d.mu.Lock()
	defer d.mu.Unlock()

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	switch verb {
	case "":
		return output("")

	case "ls":
		path := cwd
		if arg != "" {
			p, err := d.fs.ChangeDirectory(cwd, arg)
			if err != nil {
				return failure(fmt.Sprintf("ls: cannot access '%s': No such file or directory", arg))
			}
			path = p
		}
		names, err := d.fs.List(path)
		if err != nil {
			return failure(fmt.Sprintf("ls: cannot access '%s': No such file or directory", path))
		}
		return output(strings.Join(names, "\n"))

	case "pwd":
		return output(cwd)

	case "cd":
		if arg == "" {
			return output("")
		}
		if arg == filesystem.Home {
			arg = filesystem.Home + "/"
		}
		newCwd, err := d.fs.ChangeDirectory(cwd, arg)
		if err != nil {
			return failure(fmt.Sprintf("cd: no such file or directory: %s", arg))
		}
		return pycommander.CommandResponse{NewCwd: newCwd}

	case "mkdir":
		if arg == "" {
			return failure("mkdir: missing operand")
		}
		path := filesystem.Resolve(cwd, arg)
		var err error
		if path == filesystem.Home {
			err = filesystem.ErrAlreadyExists
		} else {
			err = d.fs.Mkdir(filesystem.Split(path))
		}
		if err != nil {
			return failure(fmt.Sprintf("mkdir: cannot create directory '%s': %s", arg, describe(err)))
		}
		return output("")

	case "cat":
		if arg == "" {
			return failure("cat: missing operand")
		}
		content, err := d.fs.ReadFile(filesystem.Resolve(cwd, arg))
		if err != nil {
			return failure(fmt.Sprintf("cat: %s: %s", arg, describe(err)))
		}
		return output(content)

	case "rm":
		if arg == "" {
			return failure("rm: missing operand")
		}
		if err := d.fs.Remove(filesystem.Resolve(cwd, arg)); err != nil {
			return failure(fmt.Sprintf("rm: cannot remove '%s': No such file or directory", arg))
		}
		return output("")

	case "echo":
		return output(strings.Join(args, " "))

	case "date":
		return output(d.now().Format(DateLayout))

	case "help":
		return output(HelpText)

	case "clear":
		return pycommander.CommandResponse{Clear: true}

	default:
		return failure(fmt.Sprintf("%s: command not found", line))
	}
}

// describe renders a file system error the way coreutils phrases it
func describe(err error) string {
	switch {
	case errors.Is(err, filesystem.ErrIsADirectory):
		return "Is a directory"
	case errors.Is(err, filesystem.ErrNotADirectory):
		return "Not a directory"
	case errors.Is(err, filesystem.ErrAlreadyExists):
		return "File exists"
	case errors.Is(err, filesystem.ErrInvalidName):
		return "Invalid argument"
	default:
		return "No such file or directory"
	}
}

func output(s string) pycommander.CommandResponse {
	return pycommander.CommandResponse{Output: &s}
}

func failure(msg string) pycommander.CommandResponse {
	return pycommander.CommandResponse{Error: msg}
}
