package fetch

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:60.0) Gecko/20100101 Firefox/81.0"

// fileSizeLimit caps response bodies at 1GB. Oversized responses are
// truncated at the cap, not rejected.
const fileSizeLimit = 1_000_000_000

// URLError reports an unparsable or malformed URL.
type URLError struct {
	URL string
	Err error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("fetch: bad URL %q: %v", e.URL, e.Err)
}

func (e *URLError) Unwrap() error { return e.Err }

// TransportError reports a failed HTTP exchange.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch: transport failure for %q: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FileError reports a failed local file read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("fetch: cannot read file %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Service fetches resource bytes. The zero value is not usable; create
// services with NewService.
type Service struct {
	client *http.Client
	fonts  *FontDB
}

// NewService creates a fetch service around an HTTP client and a font
// database. A nil client falls back to a default client; a nil font
// database falls back to the process-wide shared one.
func NewService(client *http.Client, fonts *FontDB) *Service {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if fonts == nil {
		fonts = SharedFontDB()
	}
	return &Service{client: client, fonts: fonts}
}

// Blob fetches the bytes behind a URL. Scheme dispatch: data: URLs are
// decoded inline, file: URLs are read from the local filesystem, and
// http(s): URLs are fetched with a bounded GET.
func (s *Service) Blob(rawURL string) ([]byte, error) {
	start := time.Now()

	if strings.HasPrefix(rawURL, "data:") {
		return decodeDataURL(rawURL)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, &URLError{URL: rawURL, Err: err}
	}
	if parsed.Scheme == "file" {
		content, err := os.ReadFile(parsed.Path)
		if err != nil {
			return nil, &FileError{Path: parsed.Path, Err: err}
		}
		return content, nil
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &URLError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, &TransportError{
			URL: rawURL,
			Err: fmt.Errorf("status %s", resp.Status),
		}
	}

	// Read at most fileSizeLimit bytes; longer bodies get cut off.
	bytes, err := io.ReadAll(io.LimitReader(resp.Body, fileSizeLimit))
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}

	tracer().Debugf("fetched %s in %s", rawURL, time.Since(start))
	return bytes, nil
}

// Text fetches the bytes behind a URL as a string (e.g., stylesheet
// text).
func (s *Service) Text(rawURL string) (string, error) {
	blob, err := s.Blob(rawURL)
	if err != nil {
		return "", err
	}
	return string(blob), nil
}

// decodeDataURL decodes an RFC 2397 data: URL inline.
func decodeDataURL(rawURL string) ([]byte, error) {
	rest := strings.TrimPrefix(rawURL, "data:")
	meta, data, found := strings.Cut(rest, ",")
	if !found {
		return nil, &URLError{URL: rawURL, Err: fmt.Errorf("data URL without comma")}
	}
	if strings.HasSuffix(meta, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, &URLError{URL: rawURL, Err: err}
		}
		return decoded, nil
	}
	unescaped, err := url.PathUnescape(data)
	if err != nil {
		return nil, &URLError{URL: rawURL, Err: err}
	}
	return []byte(unescaped), nil
}
