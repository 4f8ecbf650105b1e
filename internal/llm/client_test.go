package llm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/ringarchive/matchbook/pkg/matchbook/internalerr"
)

type roundTrip func(*http.Request) *http.Response

func (rt roundTrip) RoundTrip(req *http.Request) (*http.Response, error) {
	return rt(req), nil
}

func TestFormatSuccess(t *testing.T) {
	client := &Client{
		APIKey: "test-key",
		Model:  "gemini-test",
		HTTPClient: &http.Client{
			Transport: roundTrip(func(req *http.Request) *http.Response {
				if !strings.Contains(req.URL.Path, "gemini-test:generateContent") {
					t.Fatalf("unexpected url: %s", req.URL)
				}
				if req.Header.Get("x-goog-api-key") != "test-key" {
					t.Fatal("missing api key header")
				}
				body, _ := io.ReadAll(req.Body)
				if !strings.Contains(string(body), "Dragon Kid") {
					t.Fatalf("event text missing from payload: %s", body)
				}
				return &http.Response{
					StatusCode: 200,
					Body: io.NopCloser(strings.NewReader(`{
						"candidates":[{"content":{"parts":[{"text":"① Singles Match\nDragon Kid⭕\nvs\nYasushi Kanda❌"}]}}]
					}`)),
					Header: make(http.Header),
				}
			}),
		},
	}

	out, err := client.Format(context.Background(), "Dragon Kid vs Yasushi Kanda", "Final Gate 2007")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.HasPrefix(out, "① Singles Match") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestFormatAPIError(t *testing.T) {
	client := &Client{
		APIKey: "test-key",
		Model:  "gemini-test",
		HTTPClient: &http.Client{
			Transport: roundTrip(func(req *http.Request) *http.Response {
				return &http.Response{
					StatusCode: 429,
					Body:       io.NopCloser(strings.NewReader(`{"error":{"message":"quota exceeded"}}`)),
					Header:     make(http.Header),
				}
			}),
		},
	}
	_, err := client.Format(context.Background(), "text", "")
	if !errors.Is(err, internalerr.ErrFormatter) {
		t.Fatalf("err = %v, want ErrFormatter", err)
	}
}

func TestFormatEmptyCandidates(t *testing.T) {
	client := &Client{
		APIKey: "test-key",
		Model:  "gemini-test",
		HTTPClient: &http.Client{
			Transport: roundTrip(func(req *http.Request) *http.Response {
				return &http.Response{
					StatusCode: 200,
					Body:       io.NopCloser(strings.NewReader(`{"candidates":[]}`)),
					Header:     make(http.Header),
				}
			}),
		},
	}
	_, err := client.Format(context.Background(), "text", "")
	if !errors.Is(err, internalerr.ErrFormatter) {
		t.Fatalf("err = %v, want ErrFormatter", err)
	}
}

func TestFormatMissingCredentials(t *testing.T) {
	client := &Client{}
	_, err := client.Format(context.Background(), "text", "")
	if !errors.Is(err, internalerr.ErrFormatter) {
		t.Fatalf("err = %v, want ErrFormatter", err)
	}
}
