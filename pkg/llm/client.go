// Package llm talks to the Anthropic Messages API to write free-text coaching feedback.
// Scores are never produced here; callers splice the text into a result with evaluator.WithFeedback.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// ClaudeAPIEndpoint is the Anthropic API endpoint.
	ClaudeAPIEndpoint = "https://api.anthropic.com/v1/messages"
	// ClaudeModel is the default feedback model.
	ClaudeModel = "claude-sonnet-4-20250514"
	// ClaudeAPIVersion is the API version.
	ClaudeAPIVersion = "2023-06-01"
	// FeedbackMaxTokens bounds the feedback reply.
	FeedbackMaxTokens = 1024
	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 60 * time.Second
)

// Client is a minimal Claude API client.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a client. An empty model selects ClaudeModel.
func NewClient(apiKey, model string) (client *Client, err error) {
	if apiKey == "" {
		err = errors.New("anthropic API key is required")
		return client, err
	}

	if model == "" {
		model = ClaudeModel
	}

	client = &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: ClaudeAPIEndpoint,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	return client, err
}

// Feedback asks the model for coaching feedback on an evaluated answer.
func (c *Client) Feedback(ctx context.Context, req FeedbackRequest) (response FeedbackResponse, err error) {
	prompt := buildFeedbackPrompt(req)

	var responseText string
	responseText, err = c.sendRequest(ctx, prompt)
	if err != nil {
		err = errors.Wrap(err, "feedback request failed")
		return response, err
	}

	err = json.Unmarshal([]byte(stripMarkdownCodeFences(responseText)), &response)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse feedback response: %s", responseText)
		return response, err
	}

	if strings.TrimSpace(response.Feedback) == "" {
		err = errors.New("feedback response has no feedback text")
		return response, err
	}

	return response, err
}

func (c *Client) sendRequest(ctx context.Context, prompt string) (responseText string, err error) {
	claudeReq := ClaudeRequest{
		Model:     c.model,
		MaxTokens: FeedbackMaxTokens,
		Messages: []Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	var reqBody []byte
	reqBody, err = json.Marshal(claudeReq)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal request")
		return responseText, err
	}

	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return responseText, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", ClaudeAPIVersion)

	var resp *http.Response
	resp, err = c.httpClient.Do(httpReq)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return responseText, err
	}
	defer resp.Body.Close()

	var respBody []byte
	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return responseText, err
	}

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
		return responseText, err
	}

	var claudeResp ClaudeResponse
	err = json.Unmarshal(respBody, &claudeResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse Claude response: %s", string(respBody))
		return responseText, err
	}

	for _, content := range claudeResp.Content {
		if content.Type == "text" || content.Type == "" {
			responseText += content.Text
		}
	}

	if responseText == "" {
		err = errors.New("no text content in Claude response")
		return responseText, err
	}

	return responseText, err
}

// stripMarkdownCodeFences unwraps a reply fenced as ```json ... ``` or ``` ... ```.
func stripMarkdownCodeFences(text string) (cleaned string) {
	cleaned = strings.TrimSpace(text)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	if idx := strings.Index(cleaned, "\n"); idx >= 0 {
		cleaned = cleaned[idx+1:]
	} else {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}

	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}
