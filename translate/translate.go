// Package translate turns natural language requests into a single command
// line for the fake terminal, using one LLM prompt per request.
package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brettbedarf/pycommander"
	"github.com/brettbedarf/pycommander/config"
)

var (
	ErrEmptyPrompt = errors.New("Prompt cannot be empty.")
	ErrNoCommand   = errors.New("AI could not determine a command.")
	ErrUnavailable = errors.New("AI translation is not configured.")
)

const systemPrompt = `You are a command line expert. You answer with exactly one terminal command and nothing else: no explanation, no markdown, no surrounding quotes.
The terminal is a small simulated shell that only understands: ls, cd, pwd, mkdir, rm, cat, echo, date, help, clear.`

// userPrompt renders the request the same way for every provider
func userPrompt(naturalLanguage string) string {
	return fmt.Sprintf(`Convert the following natural language command to a terminal command.

Natural Language Command: %s

Terminal Command: `, naturalLanguage)
}

// New returns an OpenAI compatible translator when cfg carries an API key,
// otherwise one that always fails with ErrUnavailable.
func New(cfg config.AIConfig) pycommander.Translator {
	if !cfg.Enabled() {
		return Unavailable{}
	}
	return NewOpenAI(cfg)
}

// Unavailable is the translator used when no LLM backend is configured
type Unavailable struct{}

func (Unavailable) Translate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	return "", ErrUnavailable
}

// Static maps exact prompts to canned commands. Handy for demos and tests
// without network access.
type Static map[string]string

func (s Static) Translate(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	if cmd, ok := s[prompt]; ok && cmd != "" {
		return cmd, nil
	}
	return "", ErrNoCommand
}

// CleanCommand extracts the command line from a model answer. Models like
// to wrap answers in code fences, backticks or a "$ " prompt; only the
// first non-empty line of the content is kept.
func CleanCommand(answer string) string {
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.Trim(line, "`")
		line = strings.TrimPrefix(line, "$ ")
		return strings.TrimSpace(line)
	}
	return ""
}

var (
	_ pycommander.Translator = Unavailable{}
	_ pycommander.Translator = Static(nil)
	_ pycommander.Translator = (*OpenAI)(nil)
)
