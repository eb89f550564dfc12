// Package sources implements the built-in content sources and registers
// them with the source registry.
package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/registry"
)

// maxBody caps the size of a fetched names payload.
const maxBody = 4 << 20

func init() {
	registry.Register("builtin", "built-in real names, never changes", func(registry.Options) (content.Source, error) {
		return Builtin{}, nil
	})
	registry.Register("http", "JSON {artists, tracks} from a URL", func(opts registry.Options) (content.Source, error) {
		if opts.URL == "" {
			return nil, errors.New("url is required")
		}
		return NewHTTP(opts.URL, opts.Timeout), nil
	})
	registry.Register("file", "JSON {artists, tracks} from a local file", func(opts registry.Options) (content.Source, error) {
		if opts.File == "" {
			return nil, errors.New("file is required")
		}
		return File{Path: opts.File}, nil
	})
}

// Builtin returns the built-in standard real lists.
type Builtin struct{}

func (Builtin) Name() string { return "builtin" }

func (Builtin) Fetch(context.Context) (content.Names, error) {
	std := content.BuiltinStandard()
	return content.Names{Artists: std.RealArtists, Tracks: std.RealTracks}, nil
}

// HTTP fetches names from a JSON endpoint.
type HTTP struct {
	URL    string
	Client *http.Client
}

// NewHTTP creates an HTTP source with the given request timeout.
func NewHTTP(url string, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTP{URL: url, Client: &http.Client{Timeout: timeout}}
}

func (h *HTTP) Name() string { return "http" }

func (h *HTTP) Fetch(ctx context.Context) (content.Names, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return content.Names{}, fmt.Errorf("sources: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return content.Names{}, fmt.Errorf("sources: fetch %s: %w", h.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return content.Names{}, fmt.Errorf("sources: fetch %s: unexpected status %s", h.URL, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return content.Names{}, fmt.Errorf("sources: read body: %w", err)
	}
	return content.DecodeNames(data)
}

// File reads names from a JSON file on every fetch.
type File struct {
	Path string
}

func (f File) Name() string { return "file" }

func (f File) Fetch(context.Context) (content.Names, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return content.Names{}, fmt.Errorf("sources: read %s: %w", f.Path, err)
	}
	return content.DecodeNames(data)
}
