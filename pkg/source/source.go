// Package source reads question and answer text from a file, an http(s) URL or stdin.
package source

import (
	"context"
	"html"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Stdin is the input name that reads from standard input.
const Stdin = "-"

// DefaultTimeout bounds URL reads.
const DefaultTimeout = 30 * time.Second

// UserAgent is sent with URL reads.
const UserAgent = "interview-coach/1.0"

//nolint:gochecknoglobals // HTML cleanup patterns
var (
	blockPattern      = regexp.MustCompile(`(?is)<(script|style|noscript)\b.*?</(script|style|noscript)>`)
	tagPattern        = regexp.MustCompile(`(?s)<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`[ \t\r\f\v]+`)
	blankLinePattern  = regexp.MustCompile(`\n\s*\n+`)
)

// Reader resolves inputs to text.
type Reader struct {
	client *http.Client
	stdin  io.Reader
}

// NewReader creates a reader with the default timeout reading stdin from os.Stdin.
func NewReader() (reader *Reader) {
	reader = &Reader{
		client: &http.Client{Timeout: DefaultTimeout},
		stdin:  os.Stdin,
	}
	return reader
}

// Read resolves input with a DefaultTimeout deadline.
func Read(input string) (text string, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	text, err = NewReader().Read(ctx, input)
	return text, err
}

// Read resolves input: "-" reads stdin, http(s) URLs are fetched and stripped of markup, anything else
// is a file path. Empty text is an error.
func (r *Reader) Read(ctx context.Context, input string) (text string, err error) {
	switch {
	case input == Stdin:
		text, err = r.readStdin()
		if err != nil {
			err = errors.Wrap(err, "failed to read stdin")
			return text, err
		}
	case isURL(input):
		text, err = r.readURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to read URL: %s", input)
			return text, err
		}
	default:
		text, err = readFile(input)
		if err != nil {
			err = errors.Wrapf(err, "failed to read file: %s", input)
			return text, err
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		err = errors.Errorf("no text found in %s", input)
		return text, err
	}

	return text, err
}

func isURL(input string) (ok bool) {
	parsed, err := url.Parse(input)
	ok = err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
	return ok
}

func readFile(path string) (text string, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		return text, err
	}

	text = string(data)
	return text, err
}

func (r *Reader) readStdin() (text string, err error) {
	var data []byte
	data, err = io.ReadAll(r.stdin)
	if err != nil {
		return text, err
	}

	text = string(data)
	return text, err
}

func (r *Reader) readURL(ctx context.Context, rawURL string) (text string, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return text, err
	}
	req.Header.Set("User-Agent", UserAgent)

	var resp *http.Response
	resp, err = r.client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return text, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return text, err
	}

	var body []byte
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return text, err
	}

	text = string(body)
	if strings.Contains(strings.ToLower(resp.Header.Get("Content-Type")), "html") || looksLikeHTML(text) {
		text = StripHTML(text)
	}

	return text, err
}

func looksLikeHTML(text string) (ok bool) {
	head := strings.ToLower(strings.TrimSpace(text))
	ok = strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
	return ok
}

// StripHTML drops script and style blocks and tags, decodes entities and collapses whitespace.
func StripHTML(markup string) (text string) {
	text = blockPattern.ReplaceAllString(markup, "")
	text = tagPattern.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = blankLinePattern.ReplaceAllString(text, "\n")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	text = strings.Join(kept, "\n")

	return text
}
