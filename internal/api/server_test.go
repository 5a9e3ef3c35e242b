package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sjsage522/etsyscraper/internal/scraper"
	"sjsage522/etsyscraper/logger"
)

// stubSearcher records calls and returns canned results
type stubSearcher struct {
	keyword  string
	pages    int
	listings []scraper.Listing
	err      error
}

func (s *stubSearcher) Search(keyword string, pages int) ([]scraper.Listing, error) {
	s.keyword = keyword
	s.pages = pages
	return s.listings, s.err
}

func doRequest(t *testing.T, searcher Searcher, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	NewServer(searcher).Router().ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	rec := doRequest(t, &stubSearcher{}, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "/search?keyword=")
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, &stubSearcher{}, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestSearchMissingKeyword(t *testing.T) {
	rec := doRequest(t, &stubSearcher{}, "/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Missing 'keyword' parameter"}`, rec.Body.String())
}

func TestSearchDefaultsToOnePage(t *testing.T) {
	stub := &stubSearcher{}
	rec := doRequest(t, stub, "/search?keyword=mug")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mug", stub.keyword)
	assert.Equal(t, 1, stub.pages)
	// Empty result marshals as an array, not null
	assert.Equal(t, "[]", rec.Body.String())
}

func TestSearchPassesPagesThrough(t *testing.T) {
	stub := &stubSearcher{}
	rec := doRequest(t, stub, "/search?keyword=mug&pages=3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, stub.pages)
}

func TestSearchNonNumericPages(t *testing.T) {
	rec := doRequest(t, &stubSearcher{}, "/search?keyword=mug&pages=lots")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Invalid 'pages' parameter"}`, rec.Body.String())
}

func TestSearchReturnsSortedListings(t *testing.T) {
	stub := &stubSearcher{listings: []scraper.Listing{
		{Title: "B", Price: 5},
		{Title: "A", Price: 20},
	}}
	rec := doRequest(t, stub, "/search?keyword=bowl")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []scraper.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, stub.listings, got)
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	srv := NewServer(&stubSearcher{})
	srv.log = logger.NewLogger(&buf).WithField("component", "server")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Every handled request produces one log line with method, path and the
	// final status
	line := buf.String()
	assert.Contains(t, line, `"method":"GET"`)
	assert.Contains(t, line, `"path":"/search"`)
	assert.Contains(t, line, `"status":400`)
}

func TestSearchSearcherError(t *testing.T) {
	stub := &stubSearcher{err: errors.New("parse failure")}
	rec := doRequest(t, stub, "/search?keyword=bowl")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "parse failure")
}
