package scraper

// Listing represents one extracted product entry from a search results page
type Listing struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}
