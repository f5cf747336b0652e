package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "answer.txt")
	content := "  I implemented a cache with a clear eviction policy.\n"

	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	text, err := Read(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}

	if text != strings.TrimSpace(content) {
		t.Errorf("Expected %q, got %q", strings.TrimSpace(content), text)
	}
}

func TestReadFileErrors(t *testing.T) {
	tmpDir := t.TempDir()
	blank := filepath.Join(tmpDir, "blank.txt")

	err := os.WriteFile(blank, []byte("  \n\t"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{name: "nonexistent", input: "/nonexistent/answer.txt"},
		{name: "whitespace only", input: blank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.input)
			if err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestReadStdin(t *testing.T) {
	reader := &Reader{client: http.DefaultClient, stdin: strings.NewReader("Tell me about yourself.\n")}

	text, err := reader.Read(context.Background(), Stdin)
	if err != nil {
		t.Fatalf("Failed to read stdin: %v", err)
	}

	if text != "Tell me about yourself." {
		t.Errorf("Expected question text, got %q", text)
	}
}

func TestReadURL(t *testing.T) {
	page := "<html><head><style>p{color:red}</style></head><body><h1>Question</h1><p>What is a closure &amp; why use one?</p><script>track()</script></body></html>"
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	text, err := NewReader().Read(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Failed to read URL: %v", err)
	}

	if text != "Question What is a closure & why use one?" {
		t.Errorf("Unexpected text %q", text)
	}

	if userAgent != UserAgent {
		t.Errorf("Expected user agent %q, got %q", UserAgent, userAgent)
	}
}

func TestReadURLPlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("a < b and b > c"))
	}))
	defer server.Close()

	text, err := NewReader().Read(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Failed to read URL: %v", err)
	}

	if text != "a < b and b > c" {
		t.Errorf("Expected plain text untouched, got %q", text)
	}
}

func TestReadURL404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewReader().Read(context.Background(), server.URL)
	if err == nil {
		t.Error("Expected error for 404 response, got nil")
	}
}

func TestReadURLTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		_, _ = w.Write([]byte("too slow"))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := NewReader().Read(ctx, server.URL)
	if err == nil {
		t.Error("Expected timeout error, got nil")
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "inline tags",
			input:    "<p>Hello <strong>world</strong></p>",
			expected: "Hello world",
		},
		{
			name:     "script removed",
			input:    "<p>Text</p><script>alert('hi')</script><p>More</p>",
			expected: "Text More",
		},
		{
			name:     "entities decoded",
			input:    "<p>SQL &lt;&gt; NoSQL</p>",
			expected: "SQL <> NoSQL",
		},
		{
			name:     "lines kept",
			input:    "<p>One</p>\n\n\n<p>Two</p>",
			expected: "One\nTwo",
		},
		{
			name:     "plain text",
			input:    "Plain text",
			expected: "Plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripHTML(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}
