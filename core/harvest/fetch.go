package harvest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxPageBytes = 8 << 20

// HTTPStatusError is returned when the site answers with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.StatusCode)
}

// FetchError ties a fetch failure to the stage it happened in ("listing" or "detail").
type FetchError struct {
	Stage string
	URL   string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("stage=%s url=%s: %v", e.Stage, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Transport sets the User-Agent and retries idempotent requests a bounded number of times.
type Transport struct {
	Base      http.RoundTripper
	UserAgent string
	// RetryMax is the number of retries after the first attempt.
	RetryMax int
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	// Only replayable requests are retried.
	max := t.RetryMax
	if max < 0 || req.Method != http.MethodGet || req.Body != nil {
		max = 0
	}

	var lastErr error
	for attempt := 0; attempt <= max; attempt++ {
		r := req.Clone(req.Context())
		if r.Header.Get("User-Agent") == "" && t.UserAgent != "" {
			r.Header.Set("User-Agent", t.UserAgent)
		}
		resp, err := base.RoundTrip(r)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if req.Context().Err() != nil {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

// NewClient builds the HTTP client used for listing and detail pages.
func NewClient(userAgent string, timeout time.Duration, retryMax int) *http.Client {
	base := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}
	return &http.Client{
		Transport: &Transport{Base: base, UserAgent: userAgent, RetryMax: retryMax},
		Timeout:   timeout,
	}
}

// Fetcher retrieves pages from the skin site.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) ([]byte, error)
}

// HTTPFetcher is a Fetcher over net/http.
type HTTPFetcher struct {
	Client *http.Client
}

// Fetch returns the body of pageURL or an *HTTPStatusError for non-2xx answers.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &HTTPStatusError{URL: pageURL, StatusCode: resp.StatusCode}
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
}

// ListingLink is an anchor from the listing page before costume filtering.
type ListingLink struct {
	Text string
	Href string
}

// ParseListing returns every item anchor on a listing page, in document order.
// Link text is the concatenation of its trimmed text nodes, which is how the
// site's "+Wishlist"/"+Locker" labels end up glued to the name.
func ParseListing(html []byte) ([]ListingLink, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}

	var links []ListingLink
	doc.Find("a[href*='/item/']").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		links = append(links, ListingLink{Text: strippedText(s), Href: strings.TrimSpace(href)})
	})
	return links, nil
}

func strippedText(s *goquery.Selection) string {
	var b strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			b.WriteString(strings.TrimSpace(c.Text()))
			return
		}
		b.WriteString(strippedText(c))
	})
	return b.String()
}

// ResolveURL makes href absolute against base.
func ResolveURL(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	h, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(h).String(), nil
}
