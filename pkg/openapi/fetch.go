/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package openapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"

	sharedutil "github.com/numaproj-labs/kindgen/pkg/shared/util"
)

// HTTPClient interface for making HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher retrieves the raw bytes of a schema document.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPFetcher downloads a schema document over HTTP(S), retrying transient
// failures with backoff. A 4xx response fails immediately.
type HTTPFetcher struct {
	url        string
	httpClient HTTPClient
	backoff    wait.Backoff
}

// HTTPFetcherOption customizes an HTTPFetcher.
type HTTPFetcherOption func(*HTTPFetcher)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c HTTPClient) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		f.httpClient = c
	}
}

// WithBackoff replaces the default retry backoff.
func WithBackoff(b wait.Backoff) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		f.backoff = b
	}
}

func NewHTTPFetcher(url string, opts ...HTTPFetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		url: url,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		backoff: sharedutil.DefaultFetchBackoff,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	var body []byte
	var lastErr error
	err := wait.ExponentialBackoffWithContext(ctx, f.backoff, func(_ context.Context) (bool, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
		if err != nil {
			return false, err
		}
		resp, err := f.httpClient.Do(req)
		if err != nil {
			lastErr = err
			return false, nil
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return false, fmt.Errorf("unexpected status %q fetching %q", resp.Status, f.url)
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("unexpected status %q fetching %q", resp.Status, f.url)
			return false, nil
		}
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			lastErr = err
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		if lastErr != nil {
			return nil, fmt.Errorf("failed to fetch schema from %q, %w", f.url, lastErr)
		}
		return nil, fmt.Errorf("failed to fetch schema from %q, %w", f.url, err)
	}
	return body, nil
}

// FileFetcher reads a schema document from the local filesystem, useful for
// air-gapped runs and tests.
type FileFetcher struct {
	path string
}

func NewFileFetcher(path string) *FileFetcher {
	return &FileFetcher{path: path}
}

func (f *FileFetcher) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %q, %w", f.path, err)
	}
	return data, nil
}

// NewFetcher returns an HTTPFetcher for http(s) locations and a FileFetcher
// for anything else.
func NewFetcher(location string) Fetcher {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPFetcher(location)
	}
	return NewFileFetcher(strings.TrimPrefix(location, "file://"))
}
