package index

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	base      = "https://peps.python.org"
	numerical = base + "/numerical/"
)

// Proposals fetches and parses the numerical PEP index.
func Proposals(client *http.Client) ([]Proposal, error) {
	res, err := client.Get(numerical)
	if err != nil {
		return nil, fmt.Errorf("could not get index: %w", err)
	}
	defer res.Body.Close()

	return parse(res.Body)
}

func parse(r io.Reader) ([]Proposal, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse body: %w", err)
	}

	var proposals []Proposal

	document.Find("#numerical-index tbody tr").Each(func(_ int, s *goquery.Selection) {
		cells := s.Find("td")
		if cells.Length() < 4 {
			return
		}

		num, err := strconv.Atoi(strings.TrimSpace(cells.Eq(1).Text()))
		if err != nil {
			return
		}

		title, uri := parseTitle(cells.Get(2))

		proposal := Proposal{
			Number:  num,
			Title:   title,
			URL:     uri,
			Authors: strings.TrimSpace(cells.Eq(3).Text()),
		}

		// The first cell abbreviates type and status,
		// i.e. <abbr title="Standards Track, Accepted">SA</abbr>.
		abbr := cells.Eq(0).Find("abbr").AttrOr("title", "")
		if t, s, ok := strings.Cut(abbr, ", "); ok {
			proposal.Type, proposal.Status = t, s
		}
		if proposal.Authors == "" {
			proposal.Authors = "No authors specified"
		}

		proposal.titleLower = strings.ToLower(proposal.Title)
		proposal.authorsLower = strings.ToLower(proposal.Authors)

		proposals = append(proposals, proposal)
	})

	return proposals, nil
}

// parseTitle walks the title cell for its link. Relative locations
// resolve against the site root.
func parseTitle(cell *html.Node) (title, location string) {
	for n := cell.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode || n.Data != "a" {
			continue
		}

		for _, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}

			if strings.HasPrefix(attr.Val, "/") {
				attr.Val = base + attr.Val
			}
			location = attr.Val
		}
		if n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
		}
		return title, location
	}
	return strings.TrimSpace(text(cell)), ""
}

func text(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		} else {
			b.WriteString(text(c))
		}
	}
	return b.String()
}

