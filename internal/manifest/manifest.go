// Package manifest fetches the authoritative version index and per-version
// metadata over HTTPS (spec.md §4.I). Unlike the single-shot fetcher (D),
// this is an upper-layer concern per spec.md §7 and may retry.
package manifest

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/brightforge/mlcore/internal/errs"
)

// Entry is one version listed in the manifest index.
type Entry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Time        string `json:"time"`
	ReleaseTime string `json:"releaseTime"`
}

// Manifest is the top-level version index document.
type Manifest struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []Entry `json:"versions"`
}

// Client fetches the manifest and per-version metadata from a configurable
// base URL, retrying transient failures — resilience is appropriate here
// because, unlike the fetcher (D), this traffic is small JSON documents,
// not large artifacts the concurrent downloader will re-verify anyway.
type Client struct {
	http *http.Client
}

// NewClient builds a manifest client with retryMax retries (0 disables
// retrying, matching the fetcher's policy, for callers who prefer a single
// resilience knob across the whole stack).
func NewClient(retryMax int) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	rc.RetryWaitMin = 250 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = nil
	return &Client{http: rc.StandardClient()}
}

// Fetch downloads and parses the manifest at url.
func (c *Client) Fetch(url string) (*Manifest, error) {
	body, err := c.get(url)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, errs.Wrap(errs.JsonError, "parse manifest", err).WithURL(url)
	}
	return &m, nil
}

// FindVersion locates the manifest entry with the given id. Per spec.md
// §7, zero or more than one match is VersionNotFound (a well-formed
// manifest never has duplicate ids, but the check is defensive).
func (m *Manifest) FindVersion(id string) (*Entry, error) {
	var found *Entry
	count := 0
	for i := range m.Versions {
		if m.Versions[i].ID == id {
			found = &m.Versions[i]
			count++
		}
	}
	if count != 1 {
		return nil, errs.New(errs.VersionNotFound, "version not found in manifest").WithVersion(id)
	}
	return found, nil
}

// FetchVersionJSON downloads the raw per-version metadata document at url,
// returning the unparsed bytes so the caller can both parse it and persist
// it to disk verbatim (spec.md §5: "version JSON is written to disk before
// any library/asset fetch is scheduled").
func (c *Client) FetchVersionJSON(url string) ([]byte, error) {
	return c.get(url)
}

func (c *Client) get(url string) ([]byte, error) {
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, errs.Wrap(errs.HttpError, "request failed", err).WithURL(url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.New(errs.HttpError, "non-2xx response: "+resp.Status).WithURL(url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(errs.IoError, "read response body", err).WithURL(url)
	}
	return body, nil
}
