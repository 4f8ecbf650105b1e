// Package llm calls a Gemini-style generateContent endpoint to
// reformat event text into canonical notation.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ringarchive/matchbook/pkg/matchbook/internalerr"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

// Client formats event text through a generative endpoint. Every
// failure surfaces as ErrFormatter so callers can route the event to
// the deterministic fallback.
type Client struct {
	Endpoint string
	APIKey   string
	Model    string

	Temperature     float64
	MaxOutputTokens int

	HTTPClient *http.Client
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Format renders one event's text into canonical notation.
func (c *Client) Format(ctx context.Context, eventText, seriesName string) (string, error) {
	if c.APIKey == "" || c.Model == "" {
		return "", fmt.Errorf("%w: api key and model required", internalerr.ErrFormatter)
	}
	payload, err := c.send(ctx, buildPrompt(eventText, seriesName))
	if err != nil {
		return "", err
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", internalerr.ErrFormatter)
	}
	text := strings.TrimSpace(payload.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("%w: blank candidate text", internalerr.ErrFormatter)
	}
	return text, nil
}

func (c *Client) send(ctx context.Context, prompt string) (*generateResponse, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     c.Temperature,
			MaxOutputTokens: c.MaxOutputTokens,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", internalerr.ErrFormatter, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", internalerr.ErrFormatter, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrFormatter, err)
	}
	defer resp.Body.Close()

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", internalerr.ErrFormatter, err)
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("%w: %s", internalerr.ErrFormatter, payload.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", internalerr.ErrFormatter, resp.StatusCode)
	}
	return &payload, nil
}

func (c *Client) url() string {
	base := c.Endpoint
	if base == "" {
		base = defaultEndpoint
	}
	return fmt.Sprintf("%s/%s:generateContent", strings.TrimRight(base, "/"), c.Model)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}
