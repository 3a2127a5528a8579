package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// Client talks to a LibreTranslate-compatible HTTP API. All fields of one
// content record are sent in a single request per target language.
type Client struct {
	baseURL    string
	apiKey     string
	source     string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL, apiKey, sourceLang string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		source:  sourceLang,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type translateRequest struct {
	Q      []string `json:"q"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Format string   `json:"format"`
	APIKey string   `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText []string `json:"translatedText"`
}

// Translate translates all fields of source into every target language. A
// language that fails is logged and omitted from the result; the caller decides
// the fallback. The returned error is non-nil only when no language succeeded.
func (c *Client) Translate(ctx context.Context, source Content, targets []string) (map[string]Content, error) {
	if len(source) == 0 || len(targets) == 0 {
		return map[string]Content{}, nil
	}

	// Stable field order so responses map back to the right fields.
	fields := make([]string, 0, len(source))
	for name := range source {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	values := make([]string, len(fields))
	for i, name := range fields {
		values[i] = source[name]
	}

	out := make(map[string]Content, len(targets))
	var lastErr error

	for _, target := range targets {
		translated, err := c.translateBatch(ctx, values, target)
		if err != nil {
			lastErr = err
			c.logger.WithError(err).WithField("target", target).Warn("Translation failed, falling back to source text")
			continue
		}

		content := make(Content, len(fields))
		for i, name := range fields {
			content[name] = translated[i]
		}
		out[target] = content
	}

	if len(out) == 0 && lastErr != nil {
		return out, fmt.Errorf("all translations failed: %w", lastErr)
	}
	return out, nil
}

func (c *Client) translateBatch(ctx context.Context, values []string, target string) ([]string, error) {
	payload, err := json.Marshal(translateRequest{
		Q:      values,
		Source: c.source,
		Target: target,
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach translation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("translation service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode translation response: %w", err)
	}

	if len(result.TranslatedText) != len(values) {
		return nil, fmt.Errorf("translation service returned %d texts, expected %d", len(result.TranslatedText), len(values))
	}

	return result.TranslatedText, nil
}
