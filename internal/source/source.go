package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"llmsbrowse/internal/domain"
)

// maxBodyBytes bounds how much of a remote source is read
const maxBodyBytes = 32 << 20

var httpClient = &http.Client{Timeout: 30 * time.Second}

// IsRemote reports whether location is an http(s) URL
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Open returns a reader for a local file or an http(s) URL
func Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if location == "" {
		return nil, fmt.Errorf("no source configured")
	}

	if !IsRemote(location) {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", location, err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", location, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: %s", location, resp.Status)
	}

	return struct {
		io.Reader
		io.Closer
	}{io.LimitReader(resp.Body, maxBodyBytes), resp.Body}, nil
}

// LoadPrompts reads a JSON array of {id, name, value} records.
// Records without an id are skipped and duplicate ids keep their first occurrence.
func LoadPrompts(ctx context.Context, location string) ([]domain.Prompt, error) {
	rc, err := Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return DecodePrompts(rc)
}

// DecodePrompts decodes prompt records from r
func DecodePrompts(r io.Reader) ([]domain.Prompt, error) {
	var raw []domain.Prompt
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse prompts: %w", err)
	}

	prompts := make([]domain.Prompt, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, p := range raw {
		if p.ID == "" {
			log.Warn().Int("index", i).Msg("skipping prompt without id")
			continue
		}
		if seen[p.ID] {
			log.Warn().Str("id", p.ID).Msg("skipping duplicate prompt id")
			continue
		}
		seen[p.ID] = true
		prompts = append(prompts, p)
	}

	log.Debug().Int("count", len(prompts)).Msg("prompts decoded")
	return prompts, nil
}

// LoadScreenshots reads a JSON object mapping titles to image URLs
func LoadScreenshots(ctx context.Context, location string) ([]domain.Screenshot, error) {
	rc, err := Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return DecodeScreenshots(rc)
}

// DecodeScreenshots decodes a {title: url} object preserving key order.
// A repeated key keeps its first position and its last value.
func DecodeScreenshots(r io.Reader) ([]domain.Screenshot, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse screenshots: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("failed to parse screenshots: expected object, got %v", tok)
	}

	var shots []domain.Screenshot
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse screenshots: %w", err)
		}
		title, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse screenshots: unexpected key %v", tok)
		}

		var url string
		if err := dec.Decode(&url); err != nil {
			return nil, fmt.Errorf("failed to parse screenshot %q: %w", title, err)
		}

		if i, dup := index[title]; dup {
			shots[i].URL = url
			continue
		}
		index[title] = len(shots)
		shots = append(shots, domain.Screenshot{Name: title, URL: url})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse screenshots: %w", err)
	}

	log.Debug().Int("count", len(shots)).Msg("screenshots decoded")
	return shots, nil
}
