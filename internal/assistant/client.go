// Package assistant answers free-form questions about a simulation through a
// chat-completion endpoint. The client is configured explicitly by its caller.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const systemPrompt = "You are an assistant that answers questions about the state of a CPU dispatch simulation."

var (
	// ErrMissingAPIKey is returned by Ask when the client has no API key.
	ErrMissingAPIKey = errors.New("assistant: missing api key")

	// ErrEmptyQuestion is returned by Ask for a blank question.
	ErrEmptyQuestion = errors.New("assistant: empty question")

	// ErrUpstream wraps every failure of the completion endpoint.
	ErrUpstream = errors.New("assistant: upstream failure")
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns the settings used when none are configured. It holds no API key.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "https://api.openai.com/v1",
		Model:       "gpt-4o-mini",
		MaxTokens:   200,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type Client struct {
	config Config
}

// Ask sends the simulation context and the question and returns the first answer.
func (c *Client) Ask(ctx context.Context, contextText, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}
	if c.config.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	request := chatRequest{
		Model: c.config.Model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Simulation context:\n%s\n\nUser question:\n%s", contextText, question)},
		},
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	}

	type result struct {
		answer string
		err    error
	}
	done := make(chan result, 1)
	go func() {
		answer, err := c.post(request)
		done <- result{answer: answer, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.answer, r.err
	}
}

func (c *Client) post(request chatRequest) (string, error) {
	agent := fiber.Post(strings.TrimRight(c.config.BaseURL, "/") + "/chat/completions")
	agent.Set(fiber.HeaderAuthorization, "Bearer "+c.config.APIKey)
	agent.JSON(request)
	if c.config.Timeout > 0 {
		agent.Timeout(c.config.Timeout)
	}
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return "", fmt.Errorf("%w: %w", ErrUpstream, errors.Join(errs...))
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil && code < 300 {
		return "", fmt.Errorf("%w: failed to decode response: %w", ErrUpstream, err)
	}
	if code < 200 || code >= 300 {
		if response.Error != nil && response.Error.Message != "" {
			return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, code, response.Error.Message)
		}
		return "", fmt.Errorf("%w: status %d", ErrUpstream, code)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrUpstream)
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// New creates a client; zero fields of config fall back to DefaultConfig.
func New(config Config) *Client {
	defaults := DefaultConfig()
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.Model == "" {
		config.Model = defaults.Model
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = defaults.MaxTokens
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	return &Client{config: config}
}
