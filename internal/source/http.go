package source

import (
	"bufio"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// HTTPFetcher downloads sources relative to a base URL, e.g.
// https://host/wrestling-analytics-dashboard/data/ + CM_Punk_matches.csv.
type HTTPFetcher struct {
	base     *url.URL
	manifest string
	client   *fasthttp.Client
}

// NewHTTPFetcher builds a fetcher for baseURL. manifest, when set, names a plain-text
// file under baseURL that lists one source per line and enables List.
func NewHTTPFetcher(baseURL, manifest string, timeout time.Duration) (*HTTPFetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &HTTPFetcher{
		base:     u,
		manifest: manifest,
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
	}, nil
}

// Fetch GETs base+name. name must be a relative reference. The context deadline, when present, bounds the request.
func (h *HTTPFetcher) Fetch(ctx context.Context, name string) (string, error) {
	ref, err := url.Parse(name)
	if err != nil {
		return "", fmt.Errorf("source name %q: %w", name, err)
	}
	if ref.Scheme != "" || ref.Host != "" {
		return "", fmt.Errorf("%w: %q is not relative to %s", ErrInvalidName, name, h.base)
	}
	target := h.base.ResolveReference(ref).String()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(target)
	req.Header.SetMethod(fasthttp.MethodGet)

	if deadline, ok := ctx.Deadline(); ok {
		err = h.client.DoDeadline(req, resp, deadline)
	} else {
		err = h.client.Do(req, resp)
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", target, err)
	}

	switch code := resp.StatusCode(); {
	case code == fasthttp.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	case code != fasthttp.StatusOK:
		return "", fmt.Errorf("get %s: unexpected status %d", target, code)
	}
	return string(resp.Body()), nil
}

// List reads the manifest file. Without a manifest the remote side cannot be enumerated.
func (h *HTTPFetcher) List(ctx context.Context) ([]string, error) {
	if h.manifest == "" {
		return nil, ErrDiscoveryUnsupported
	}
	text, err := h.Fetch(ctx, h.manifest)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	var names []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, sc.Err()
}

var _ Fetcher = (*HTTPFetcher)(nil)
