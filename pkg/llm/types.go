package llm

import (
	"github.com/nikogura/interview-coach/pkg/evaluator"
)

// FeedbackRequest is an evaluated answer to write feedback for.
type FeedbackRequest struct {
	Question string            `json:"question"`
	Answer   string            `json:"answer"`
	Context  evaluator.Context `json:"context"`
	Result   evaluator.Result  `json:"result"`
}

// FeedbackResponse is the model's reply.
type FeedbackResponse struct {
	Feedback string   `json:"feedback"`
	Tips     []string `json:"tips,omitempty"`
}

// ClaudeRequest represents the Claude API request format.
type ClaudeRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// ClaudeResponse represents the Claude API response format.
type ClaudeResponse struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Role    string    `json:"role"`
	Content []Content `json:"content"`
	Model   string    `json:"model"`
	Usage   Usage     `json:"usage"`
}

// Message represents a message in the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Content represents content in the response.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Usage represents token usage information.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
