// Package fetch downloads a single URL to a destination path, writing the
// file in place (a failed fetch can leave a partial file), and owns the process-wide HTTP client singleton described in spec.md §9
// ("created lazily on first use, reused by all fetches to share connection
// pools").
package fetch

import (
	"net/http"
	"sync"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

var (
	once   sync.Once
	client *http.Client
)

// Client returns the process-wide HTTP client. It is built once, lazily, on
// first call. The fetcher (D) itself performs no retries (spec.md §7: "the
// fetcher surfaces HTTP and I/O failures without retry; retry is an upper
// layer concern") so RetryMax is 0 here; upper layers that want resilience
// (the manifest client, I) build their own retryablehttp.Client, with its
// own transport, instead of retrying through this one.
func Client() *http.Client {
	once.Do(func() {
		rc := retryablehttp.NewClient()
		rc.RetryMax = 0
		rc.Logger = nil
		rc.HTTPClient = &http.Client{Transport: cleanhttp.DefaultPooledTransport()}
		client = rc.StandardClient()
	})
	return client
}
