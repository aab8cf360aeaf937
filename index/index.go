// Package index tracks the published PEPs from the peps.python.org
// numerical index.
package index

import (
	"strconv"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
)

type Proposal struct {
	Number int
	Title  string
	URL    string

	Authors string
	Status  string
	Type    string

	titleLower   string
	authorsLower string
}

type MatchType uint8

const (
	NoMatch MatchType = iota
	MatchTitle
	MatchAuthor
	MatchExact
)

// MatchAll partitions the proposals matching the keyword by match
// quality. An exact PEP number match wins outright.
func MatchAll(proposals []Proposal, keyword string) (title []Proposal, author []Proposal, total int) {
	for _, p := range proposals {
		switch p.Match(keyword) {
		case NoMatch:
			continue
		case MatchExact:
			return []Proposal{p}, nil, 1
		case MatchTitle:
			title = append(title, p)
		case MatchAuthor:
			author = append(author, p)
		default:
			continue
		}
		total++
	}
	return
}

// Match reports how the keyword matches the proposal. A bare number
// equal to the PEP number is an exact match; otherwise every word of
// the keyword must appear in the title, or failing that, in the
// author list.
func (p Proposal) Match(keyword string) MatchType {
	if n, err := strconv.Atoi(keyword); err == nil && n == p.Number {
		return MatchExact
	}

	f := strings.Fields(strings.ToLower(keyword))

	match := MatchTitle
	for _, s := range f {
		if strings.Contains(p.titleLower, s) {
			continue
		}
		if strings.Contains(p.authorsLower, s) {
			match = MatchAuthor
			continue
		}
		return NoMatch
	}
	return match
}

func (p Proposal) Display() discord.Embed {
	return discord.Embed{
		Title:       "PEP " + strconv.Itoa(p.Number) + ": " + p.Title,
		URL:         p.URL,
		Description: p.Type + ", " + p.Status,
		Footer: &discord.EmbedFooter{
			Text: p.Authors,
		},
		Color: 0x3776AB,
	}
}
