package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// WebDirSource reads files linked from an HTML directory index, the
// kind a plain file server renders for a folder of markdown files.
type WebDirSource struct {
	index  string
	client *http.Client
}

// NewWebDirSource points at the index page URL. A nil client falls
// back to http.DefaultClient.
func NewWebDirSource(index string, client *http.Client) *WebDirSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebDirSource{index: index, client: client}
}

func (w *WebDirSource) ListFiles(ctx context.Context) ([]File, error) {
	base, err := url.Parse(w.index)
	if err != nil {
		return nil, fmt.Errorf("source: parse index url: %w", err)
	}
	body, err := w.get(ctx, w.index)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := html.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("source: parse index html: %w", err)
	}

	seen := map[string]bool{}
	var files []File
	for _, href := range anchorHrefs(doc) {
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		abs := base.ResolveReference(ref)
		if !strings.EqualFold(path.Ext(abs.Path), ".md") || seen[abs.String()] {
			continue
		}
		seen[abs.String()] = true
		files = append(files, &webFile{src: w, url: abs.String(), name: path.Base(abs.Path)})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	return files, nil
}

func (w *WebDirSource) get(ctx context.Context, u string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("source: build request: %w", err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: fetch %s: %w", u, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("source: fetch %s: status %d", u, resp.StatusCode)
	}
	return resp.Body, nil
}

func anchorHrefs(n *html.Node) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, a := range n.Attr {
				if a.Key == "href" && a.Val != "" {
					out = append(out, a.Val)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

type webFile struct {
	src  *WebDirSource
	url  string
	name string
}

func (f *webFile) Name() string { return f.name }

func (f *webFile) Text(ctx context.Context) (string, error) {
	body, err := f.src.get(ctx, f.url)
	if err != nil {
		return "", err
	}
	defer body.Close()
	b, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("source: read %s: %w", f.url, err)
	}
	return string(b), nil
}
