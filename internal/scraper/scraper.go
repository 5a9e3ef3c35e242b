package scraper

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/PuerkitoBio/goquery"

	"sjsage522/etsyscraper/config"
	"sjsage522/etsyscraper/helpers"
	"sjsage522/etsyscraper/logger"
)

// FetchFunc retrieves the body of a single search results page
type FetchFunc func(pageURL string) (io.Reader, error)

// Scraper fetches search result pages and extracts listings from them
type Scraper struct {
	searchURL string
	pause     time.Duration
	log       *logger.Logger
	fetchFunc FetchFunc
}

// NewScraper creates a scraper from the application configuration
func NewScraper(cfg config.Config) *Scraper {
	client := &http.Client{Timeout: cfg.FetchTimeout}
	return &Scraper{
		searchURL: cfg.SearchURL,
		pause:     cfg.PagePause,
		log:       logger.ForScraper(),
		fetchFunc: func(pageURL string) (io.Reader, error) {
			return helpers.FetchPage(client, pageURL)
		},
	}
}

// Search fetches up to pages result pages for keyword and returns the
// discovered listings sorted ascending by price, ties keeping extraction
// order. A fetch failure (network error or non-200) ends the page loop early
// and whatever was already collected is returned with a nil error; only a
// document parse failure is surfaced to the caller.
func (s *Scraper) Search(keyword string, pages int) ([]Listing, error) {
	query := url.QueryEscape(keyword)
	var results []Listing

	for page := 1; page <= pages; page++ {
		pageURL := fmt.Sprintf("%s%s&page=%d", s.searchURL, query, page)

		body, err := s.fetchFunc(pageURL)
		if err != nil {
			s.log.Warn().
				Int("page", page).
				Err(err).
				Msg("Fetch failed, keeping listings collected so far")
			break
		}

		doc, err := goquery.NewDocumentFromReader(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %d: %w", page, err)
		}

		listings := ExtractListings(doc)
		s.log.Debug().
			Int("page", page).
			Int("listings", len(listings)).
			Msg("Extracted listings")
		results = append(results, listings...)

		// Politeness pause after every page, the last one included
		time.Sleep(s.pause)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Price < results[j].Price
	})

	return results, nil
}
