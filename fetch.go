package daumdic

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// maxBodySize caps how much of a response we are willing to read. Results
// pages are well under 1 MiB.
const maxBodySize = 10 << 20

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// Fetcher retrieves the raw bytes of a results page. Implementations must
// honor the context for cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// httpFetcher is the default Fetcher, a thin wrapper around net/http that
// decodes the body according to the response charset.
type httpFetcher struct {
	client *http.Client
}

func (f *httpFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ko,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, URL: rawURL}
	}

	// Daum serves UTF-8 today, but decode by the declared charset so the
	// parser always sees UTF-8 regardless.
	r, err := charset.NewReader(io.LimitReader(resp.Body, maxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode response charset")
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	return body, nil
}
