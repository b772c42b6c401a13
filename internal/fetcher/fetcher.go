// Package fetcher downloads feed files over http.
package fetcher

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// supportedContentTypes lists the media types accepted as feed documents.
var supportedContentTypes = map[string]struct{}{
	"application/xml":     {},
	"text/xml":            {},
	"application/rss+xml": {},
}

// Fetcher builds http requests and fetches feed files via http.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher returns a new Fetcher.
func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	return &Fetcher{
		client:    client,
		userAgent: userAgent,
	}
}

// FetchFile returns a ReadCloser with the file fetched from url.
// The caller is responsible for closing the returned ReadCloser.
func (f *Fetcher) FetchFile(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/xml, text/xml")
	req.Header.Add("Accept-Encoding", "gzip")
	req.Header.Add("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, ErrStatusNotOK
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		_ = resp.Body.Close()
		return nil, ErrContentTypeNotSupported
	}
	if _, ok := supportedContentTypes[mediaType]; !ok {
		_ = resp.Body.Close()
		return nil, ErrContentTypeNotSupported
	}

	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		return decompressResponse(resp.Body)
	}
	return resp.Body, nil
}

// decompressResponse returns an io.ReadCloser with the decompressed http response.
func decompressResponse(response io.ReadCloser) (io.ReadCloser, error) {
	decompressed, err := gzip.NewReader(response)
	if err != nil {
		_ = response.Close()
		return nil, fmt.Errorf("can't decompress response: %w", err)
	}

	return &decompressedReadCloser{
		compressed:   response,
		decompressed: decompressed,
	}, nil
}

// decompressedReadCloser wraps a decompressed Reader and the compressed ReadCloser.
// It reads from the decompressed Reader, but closes the compressed ReadCloser.
type decompressedReadCloser struct {
	compressed   io.ReadCloser
	decompressed io.Reader
}

// Read reads uncompressed bytes from the underlying Reader into p.
func (r decompressedReadCloser) Read(p []byte) (n int, err error) {
	return r.decompressed.Read(p)
}

// Close closes the underlying compressed ReadCloser.
func (r decompressedReadCloser) Close() error {
	return r.compressed.Close()
}
