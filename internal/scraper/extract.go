package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"sjsage522/etsyscraper/helpers"
)

const maxTitleLength = 200

// selectorStrategy is one entry in the fallback chain used to locate listing
// nodes. Strategies are tried in order and the first one matching anything
// wins; results are never merged across strategies. The chain exists to
// tolerate markup drift on the upstream site.
type selectorStrategy struct {
	name     string
	selector string
}

var listingStrategies = []selectorStrategy{
	{name: "listing-id-attribute", selector: "[data-listing-id]"},
	{name: "unstyled-list-item", selector: "li.wt-list-unstyled"},
	{name: "listing-link", selector: "a.listing-link"},
}

// ExtractListings pulls listings out of a parsed search results page.
// Listings whose price cannot be parsed are dropped.
func ExtractListings(doc *goquery.Document) []Listing {
	nodes := findListingNodes(doc)
	if nodes == nil {
		return nil
	}

	var listings []Listing
	nodes.Each(func(_ int, s *goquery.Selection) {
		title := extractTitle(s)
		price, ok := extractPrice(s)
		if !ok {
			return
		}
		listings = append(listings, Listing{Title: title, Price: price})
	})
	return listings
}

// findListingNodes locates candidate listing nodes via the fallback chain
func findListingNodes(doc *goquery.Document) *goquery.Selection {
	for _, strategy := range listingStrategies {
		if sel := doc.Find(strategy.selector); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// extractTitle derives a title from a candidate node: a heading's text, else
// an anchor's title/aria-label attribute or its text, else the node's full
// visible text truncated. First non-empty wins.
func extractTitle(s *goquery.Selection) string {
	if heading := s.Find("h3").First(); heading.Length() > 0 {
		if title := helpers.CollapseWhitespace(heading.Text()); title != "" {
			return title
		}
	}

	if link := s.Find("a[href]").First(); link.Length() > 0 {
		if title := link.AttrOr("title", ""); title != "" {
			return title
		}
		if title := link.AttrOr("aria-label", ""); title != "" {
			return title
		}
		if title := helpers.CollapseWhitespace(link.Text()); title != "" {
			return title
		}
	}

	return helpers.TruncateRunes(visibleText(s), maxTitleLength)
}

// extractPrice derives a price from a candidate node, preferring the
// dedicated currency element and falling back to the node's full text
func extractPrice(s *goquery.Selection) (float64, bool) {
	if price, ok := ParsePrice(s.Find("span.currency-value").First().Text()); ok {
		return price, true
	}
	return ParsePrice(visibleText(s))
}

// visibleText renders a selection's text the way a browser separates it:
// text fragments of distinct elements joined by single spaces
func visibleText(s *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, node := range s.Nodes {
		walk(node)
	}
	return helpers.CollapseWhitespace(strings.Join(parts, " "))
}
