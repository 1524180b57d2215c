package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTimeout = 8 * time.Second
	maxBodyBytes   = 4 << 20
)

var ErrUpstreamStatus = errors.New("upstream returned non-success status")

// HeaderPolicy is the set of request headers sent to an upstream. Price sites
// block obvious scripted clients, so every policy poses as a real visitor.
type HeaderPolicy struct {
	Name    string
	Headers map[string]string
}

var (
	BrowserPolicy = HeaderPolicy{
		Name: "browser",
		Headers: map[string]string{
			"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
			"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
			"Accept-Language":           "en-IN,en-GB;q=0.9,en-US;q=0.8,en;q=0.7",
			"Cache-Control":             "no-cache",
			"Pragma":                    "no-cache",
			"Sec-Ch-Ua":                 `"Not/A)Brand";v="8", "Chromium";v="126", "Google Chrome";v="126"`,
			"Sec-Ch-Ua-Mobile":          "?0",
			"Sec-Ch-Ua-Platform":        `"Windows"`,
			"Sec-Fetch-Dest":            "document",
			"Sec-Fetch-Mode":            "navigate",
			"Sec-Fetch-Site":            "none",
			"Sec-Fetch-User":            "?1",
			"Upgrade-Insecure-Requests": "1",
		},
	}

	CrawlerPolicy = HeaderPolicy{
		Name: "crawler",
		Headers: map[string]string{
			"User-Agent":      "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "en",
			"From":            "googlebot(at)googlebot.com",
		},
	}

	FeedPolicy = HeaderPolicy{
		Name: "feed",
		Headers: map[string]string{
			"User-Agent": "zakat-calculator/1.0",
			"Accept":     "application/json",
		},
	}
)

// WithUserAgent returns a copy of the policy with its agent replaced.
func (p HeaderPolicy) WithUserAgent(ua string) HeaderPolicy {
	if strings.TrimSpace(ua) == "" {
		return p
	}
	headers := make(map[string]string, len(p.Headers))
	for k, v := range p.Headers {
		headers[k] = v
	}
	headers["User-Agent"] = ua
	return HeaderPolicy{Name: p.Name, Headers: headers}
}

// Client issues disguised GET requests with a bounded timeout. It is safe
// for concurrent use and must not be mutated after construction.
type Client struct {
	httpClient *http.Client
	policy     HeaderPolicy
	timeout    time.Duration
}

func NewClient(policy HeaderPolicy, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		policy:     policy,
		timeout:    timeout,
	}
}

func (c *Client) Policy() HeaderPolicy { return c.policy }

// Get returns the response body, or an error for transport failures,
// timeouts and non-2xx statuses.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range c.policy.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("get %s: status %d: %w", url, resp.StatusCode, ErrUpstreamStatus)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}
