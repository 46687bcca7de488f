package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
	"github.com/willianpsouza/VocabularyPlatform/internal/pkg/config"
)

// Client talks to a dictionaryapi.dev compatible word-definition service.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(cfg config.DictionaryConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		url: strings.TrimRight(cfg.URL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type apiEntry struct {
	Word     string       `json:"word"`
	Phonetic string       `json:"phonetic"`
	Meanings []apiMeaning `json:"meanings"`
}

type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// Lookup returns the first definition of every meaning of word. A 404 from
// the service is NotFound, any other non-2xx is UpstreamUnavailable.
func (c *Client) Lookup(ctx context.Context, word string) ([]domain.DictionaryEntry, error) {
	endpoint := fmt.Sprintf("%s/entries/en/%s", c.url, url.PathEscape(strings.TrimSpace(word)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, domain.NewTimeoutError("Dictionary lookup").WithError(err)
		}
		return nil, domain.NewUpstreamUnavailableError("Dictionary service is unavailable").WithError(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, domain.NewUpstreamUnavailableError("Dictionary service is unavailable").WithError(err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewNotFoundError("Word")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewUpstreamUnavailableError("Dictionary service is unavailable").
			WithError(fmt.Errorf("dictionary lookup failed (status %d): %s", resp.StatusCode, string(bodyBytes)))
	}

	var result []apiEntry
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, domain.NewUpstreamUnavailableError("Dictionary service returned an invalid response").WithError(err)
	}

	entries := []domain.DictionaryEntry{}
	for _, e := range result {
		for _, m := range e.Meanings {
			if len(m.Definitions) == 0 {
				continue
			}
			entries = append(entries, domain.DictionaryEntry{
				Word:         e.Word,
				Phonetic:     e.Phonetic,
				PartOfSpeech: m.PartOfSpeech,
				Definition:   m.Definitions[0].Definition,
				Example:      m.Definitions[0].Example,
			})
		}
	}
	if len(entries) == 0 {
		return nil, domain.NewNotFoundError("Word")
	}
	return entries, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

var _ domain.Dictionary = (*Client)(nil)
