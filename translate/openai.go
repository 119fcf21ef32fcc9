package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/brettbedarf/pycommander/config"
	"github.com/brettbedarf/pycommander/internal/util"
)

// OpenAI implements [pycommander.Translator] against the OpenAI Chat
// Completions API. Any server speaking that wire format works (OpenAI,
// OpenRouter, vLLM, Ollama, llama.cpp, ...).
type OpenAI struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
}

// NewOpenAI creates an OpenAI compatible translator. Zero config values
// fall back to the package config defaults.
func NewOpenAI(cfg config.AIConfig) *OpenAI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultAIBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = config.DefaultAIModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = config.DefaultAITimeout
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = config.DefaultAIMaxTokens
	}

	return &OpenAI{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
	}
}

// Translate sends a single chat completion request and returns the
// cleaned up command line.
func (o *OpenAI) Translate(ctx context.Context, prompt string) (string, error) {
	logger := util.GetLogger("OpenAI.Translate")

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(prompt)},
		},
		MaxTokens:   o.maxTokens,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint(), bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	start := time.Now()
	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Message == "" {
			return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		}
		return "", fmt.Errorf("API error: %s (type: %s)", errResp.Error.Message, errResp.Error.Type)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	logger.Debug().
		Dur("duration", time.Since(start)).
		Int("total_tokens", chatResp.Usage.TotalTokens).
		Msg("Chat completion finished")

	if len(chatResp.Choices) == 0 {
		return "", ErrNoCommand
	}
	cmd := CleanCommand(chatResp.Choices[0].Message.Content)
	if cmd == "" {
		return "", ErrNoCommand
	}
	return cmd, nil
}

func (o *OpenAI) endpoint() string {
	return o.baseURL + "/chat/completions"
}
