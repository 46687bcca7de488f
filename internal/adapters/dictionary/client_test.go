package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
	"github.com/willianpsouza/VocabularyPlatform/internal/pkg/config"
)

const serverEntry = `[{
	"word": "server",
	"phonetic": "/ˈsɜːvə/",
	"meanings": [
		{"partOfSpeech": "noun", "definitions": [
			{"definition": "A computer that provides services.", "example": "The server is down."},
			{"definition": "One who serves."}
		]},
		{"partOfSpeech": "verb", "definitions": []}
	]
}]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.DictionaryConfig{URL: srv.URL + "/", Timeout: time.Second})
}

func TestClient_Lookup(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(serverEntry))
	})

	entries, err := c.Lookup(context.Background(), "server")
	require.NoError(t, err)
	assert.Equal(t, "/entries/en/server", gotPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "noun", entries[0].PartOfSpeech)
	assert.Equal(t, "A computer that provides services.", entries[0].Definition)
	assert.Equal(t, "The server is down.", entries[0].Example)
	assert.Equal(t, "/ˈsɜːvə/", entries[0].Phonetic)
}

func TestClient_LookupErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"not found", http.StatusNotFound, `{"title":"No Definitions Found"}`, domain.IsNotFound},
		{"no meanings", http.StatusOK, `[{"word":"x","meanings":[]}]`, domain.IsNotFound},
		{"server error", http.StatusInternalServerError, `oops`, isUpstream},
		{"bad json", http.StatusOK, `{`, isUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := c.Lookup(context.Background(), "x")
			require.Error(t, err)
			assert.True(t, tt.check(err), err.Error())
		})
	}
}

func TestClient_LookupTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(config.DictionaryConfig{URL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := c.Lookup(context.Background(), "slow")
	require.Error(t, err)
	assert.True(t, domain.IsTimeout(err), err.Error())
}

func isUpstream(err error) bool {
	appErr, ok := err.(*domain.AppError)
	return ok && appErr.Code == domain.CodeUpstreamUnavailable
}
