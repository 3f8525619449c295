package transcribe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Client sends audio files to a whisper-compatible transcription endpoint
// and returns the plain-text transcript.
type Client struct {
	apiURL     string
	apiKey     string
	language   string
	httpClient *http.Client
}

// NewClient creates a transcription client. apiURL is the full endpoint URL
// (an OpenAI-style /v1/audio/transcriptions route).
func NewClient(apiURL, apiKey, language string) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		language:   language,
		httpClient: &http.Client{},
	}
}

// Transcribe uploads the audio file at filePath and blocks until the service
// returns the transcript. It does not delete the file; the pipeline owns the
// audio artifact's lifecycle.
func (c *Client) Transcribe(ctx context.Context, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("opening audio file: %w", err)
	}
	defer f.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("copying file data: %w", err)
	}

	writer.WriteField("language", c.language)
	writer.WriteField("response_format", "text")
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription request failed with status %d: %s", resp.StatusCode, respBody)
	}

	return strings.TrimSpace(string(respBody)), nil
}
