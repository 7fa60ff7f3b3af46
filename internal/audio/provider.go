package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoRemoteSource marks ids that have no remote endpoint (letters and
// numbers are recorded locally, never fetched).
var ErrNoRemoteSource = errors.New("no remote source for audio id")

// Provider fetches an audio artifact from a remote endpoint.
type Provider interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// remotePaths maps the id prefix (the store subdirectory) onto the remote
// directory serving those recordings.
var remotePaths = map[string]string{
	"nouns": "deklination/substantive/grundform",
	"verbs": "konjugation/grundform",
}

// Verbformen downloads pronunciation clips from verbformen.de.
type Verbformen struct {
	base   string
	client *http.Client
}

// NewVerbformen builds a provider rooted at the given base URL.
func NewVerbformen(base string) *Verbformen {
	return &Verbformen{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch downloads the clip for an id. A non-success status or an empty body
// is an error; the caller degrades to silent drilling.
func (v *Verbformen) Fetch(ctx context.Context, id string) ([]byte, error) {
	clipURL, err := v.remoteURL(id)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, clipURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, clipURL)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty body for %s", clipURL)
	}
	return data, nil
}

func (v *Verbformen) remoteURL(id string) (string, error) {
	prefix, name, ok := strings.Cut(id, "/")
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoRemoteSource, id)
	}
	dir, ok := remotePaths[prefix]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoRemoteSource, id)
	}
	return v.base + "/" + dir + "/" + url.PathEscape(RemoteName(name)), nil
}

var umlauts = strings.NewReplacer(
	"Ä", "A3",
	"Ö", "O3",
	"Ü", "U3",
	"ä", "a3",
	"ö", "o3",
	"ü", "u3",
	" ", "_",
)

// RemoteName converts a local artifact name to the remote file name:
// verbformen encodes umlauts as vowel+3 and spaces as underscores.
func RemoteName(name string) string {
	return umlauts.Replace(name)
}
