package api

import (
	"net/http"
	"strconv"

	"sjsage522/etsyscraper/internal/scraper"
)

const indexHTML = "<h1>Etsy Scraper API</h1><p>Use /search?keyword=your+query</p>"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(indexHTML))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	keyword := q.Get("keyword")
	if keyword == "" {
		respondError(w, http.StatusBadRequest, "Missing 'keyword' parameter")
		return
	}

	pages := 1
	if v := q.Get("pages"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			// pages is not a validated input; a bad value fails the request
			respondError(w, http.StatusInternalServerError, "Invalid 'pages' parameter")
			return
		}
		pages = parsed
	}

	listings, err := s.searcher.Search(keyword, pages)
	if err != nil {
		s.log.WithError(err).Error().
			Str("keyword", keyword).
			Msg("Search failed")
		respondError(w, http.StatusInternalServerError, "Search failed: "+err.Error())
		return
	}

	// Return empty list if nil to be JSON friendly
	if listings == nil {
		listings = []scraper.Listing{}
	}
	respondJSON(w, http.StatusOK, listings)
}
