package probes

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/swcstudio/domainscan/internal/models"
)

const (
	defaultFetchTimeout = 10 * time.Second
	fetchMaxBody        = 2 * 1024 * 1024 // 2MB, enough for title + headings
	maxHeadings         = 25
)

// ContentClient retrieves and parses the target's root document
type ContentClient struct {
	// Scheme is "https" in production; tests override it to reach an
	// httptest server.
	Scheme    string
	UserAgent string
	client    *http.Client
}

// NewContentClient creates a content-fetch client with a bounded timeout
func NewContentClient(userAgent string, timeout time.Duration) *ContentClient {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &ContentClient{
		Scheme:    "https",
		UserAgent: userAgent,
		client:    newProbeHTTPClient(timeout),
	}
}

// Fetch retrieves the root document and extracts title, meta description,
// heading texts, and link/image counts
func (c *ContentClient) Fetch(ctx context.Context, hostname string) (*models.WebData, error) {
	url := fmt.Sprintf("%s://%s/", c.Scheme, hostname)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &models.NetworkError{Op: "content fetch", Hostname: hostname, Err: err}
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &models.NetworkError{Op: "content fetch", Hostname: hostname, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &models.NetworkError{
			Op:       "content fetch",
			Hostname: hostname,
			Err:      fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, fetchMaxBody))
	if err != nil {
		return nil, &models.NetworkError{Op: "content parse", Hostname: hostname, Err: err}
	}

	web := &models.WebData{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Description: strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", "")),
		LinkCount:   doc.Find("a").Length(),
		ImageCount:  doc.Find("img").Length(),
	}

	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			web.Headings = append(web.Headings, text)
		}
		return len(web.Headings) < maxHeadings
	})

	return web, nil
}

// newProbeHTTPClient builds the shared client shape used by the HTTP-facing
// probes: bounded timeout, tolerant of self-signed certs, capped redirects.
func newProbeHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
	}
}
