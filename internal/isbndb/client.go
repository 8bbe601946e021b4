package isbndb

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"isbndb/internal/config"
)

const (
	searchTypeBooks      = "books"
	searchTypePublishers = "publishers"

	resultsDetails = "details"
	resultsAuthors = "authors"

	defaultTimeout = 10 * time.Second
	userAgent      = "isbndb-driver/1.0"

	htmlDoctype = "<!DOCTYPE html"
)

// Client performs raw lookups against the ISBNdb XML API. It holds no
// per-request state and is safe for concurrent reuse; the access key is
// resolved once on first use and cached for the lifetime of the client.
type Client struct {
	httpClient *http.Client
	baseURL    string

	configuredKey string
	keyOnce       sync.Once
	key           string
	keyErr        error
}

// NewClient creates a client for the configured endpoint. An empty access key
// defers resolution to the environment variable and key file fallback chain
// at first use.
func NewClient(cfg config.API) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		baseURL:       strings.TrimRight(baseURL, "/"),
		configuredKey: cfg.AccessKey,
	}
}

func (c *Client) accessKey() (string, error) {
	c.keyOnce.Do(func() {
		c.key, c.keyErr = config.ResolveAccessKey(c.configuredKey)
	})
	return c.key, c.keyErr
}

// fetch performs one synchronous GET against the API and decodes the XML
// body. It returns the request URL alongside the document so callers can
// record the source of an extraction. Misses come back as ErrNoData; a body
// that is neither HTML nor well-formed XML is an upstream contract violation
// and surfaces as a hard error.
func (c *Client) fetch(ctx context.Context, searchType, searchField, searchParam, resultsType string) (*document, string, error) {
	key, err := c.accessKey()
	if err != nil {
		return nil, "", err
	}

	q := url.Values{}
	q.Set("access_key", key)
	q.Set("index1", searchField)
	q.Set("results", resultsType)
	q.Set("value1", searchParam)
	requestURL := fmt.Sprintf("%s/%s.xml?%s", c.baseURL, searchType, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, requestURL, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, requestURL, fmt.Errorf("fetch %s: %w", searchType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, requestURL, ErrNoData
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, requestURL, fmt.Errorf("read %s response: %w", searchType, err)
	}

	// The API answers some error conditions with an HTML page instead of
	// XML; feeding that to the decoder would report a parse failure for
	// what is really a miss.
	if isHTMLErrorPage(body) {
		return nil, requestURL, ErrNoData
	}

	var doc document
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, requestURL, fmt.Errorf("parse %s response: %w", searchType, err)
	}
	return &doc, requestURL, nil
}

func isHTMLErrorPage(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) < len(htmlDoctype) {
		return false
	}
	return strings.EqualFold(string(trimmed[:len(htmlDoctype)]), htmlDoctype)
}
