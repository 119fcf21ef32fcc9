package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/brettbedarf/pycommander"
	"github.com/brettbedarf/pycommander/config"
	"github.com/brettbedarf/pycommander/filesystem"
	"github.com/brettbedarf/pycommander/internal/util"
	"github.com/brettbedarf/pycommander/shell"
	"github.com/brettbedarf/pycommander/translate"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

func newReplCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run the terminal locally with line editing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags, cmd.Flags())
			if err != nil {
				return err
			}
			return repl(cfg)
		},
	}
}

func prompt(cwd string) string {
	return fmt.Sprintf("user@pycommander:%s$ ", cwd)
}

// session is the local equivalent of a browser tab: it owns the cwd
type session struct {
	dispatcher *shell.Dispatcher
	cwd        string
	timeout    time.Duration
}

// completer adapts Dispatcher.Complete to readline's suffix based protocol
type completer struct {
	s *session
}

func (c completer) Do(line []rune, pos int) ([][]rune, int) {
	typed := string(line[:pos])
	word := typed
	if i := strings.LastIndex(typed, " "); i >= 0 {
		word = typed[i+1:]
	}

	var suffixes [][]rune
	for _, cand := range c.s.dispatcher.Complete(c.s.cwd, typed) {
		if strings.HasPrefix(cand, word) {
			suffixes = append(suffixes, []rune(cand[len(word):]))
		}
	}
	return suffixes, len([]rune(word))
}

// run executes one line and renders the response to out. It reports
// whether the screen should be cleared.
func (s *session) run(line string, out io.Writer) bool {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp := s.dispatcher.Execute(ctx, pycommander.CommandRequest{Command: line, Cwd: s.cwd})
	if resp.AICommand != "" {
		fmt.Fprintf(out, "Executing: %s\n", resp.AICommand)
	}
	switch {
	case resp.Error != "":
		fmt.Fprintln(out, resp.Error)
	case resp.Output != nil && *resp.Output != "":
		fmt.Fprintln(out, *resp.Output)
	}
	if resp.NewCwd != "" {
		s.cwd = resp.NewCwd
	}
	return resp.Clear
}

func repl(cfg *config.Config) error {
	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("main")

	fs, err := loadFS(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("nodes", cfg.SeedFile).Msg("Failed to load nodes")
	}

	s := &session{
		dispatcher: shell.NewDispatcher(fs, translate.New(cfg.AI)),
		cwd:        filesystem.Home,
		timeout:    cfg.AI.Timeout,
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt(s.cwd),
		HistoryLimit:    cfg.HistoryLimit,
		AutoComplete:    completer{s},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), "Welcome to PyCommander! Type 'help' for a list of commands.")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			return nil
		}
		if s.run(line, rl.Stdout()) {
			readline.ClearScreen(rl.Stdout())
		}
		rl.SetPrompt(prompt(s.cwd))
	}
}
