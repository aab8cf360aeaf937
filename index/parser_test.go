package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `
<html><body>
<section id="numerical-index">
<table>
<tbody>
<tr>
  <td><abbr title="Process, Active">PA</abbr></td>
  <td><a href="/pep-0001/">1</a></td>
  <td><a href="/pep-0001/">PEP Purpose and Guidelines</a></td>
  <td>Barry Warsaw, Jeremy Hylton, David Goodger</td>
</tr>
<tr>
  <td><abbr title="Standards Track, Final">SF</abbr></td>
  <td><a href="/pep-0484/">484</a></td>
  <td><a href="/pep-0484/">Type Hints</a></td>
  <td>Guido van Rossum, Jukka Lehtosalo</td>
</tr>
<tr>
  <td><abbr title="Standards Track, Draft">S</abbr></td>
  <td><a href="/pep-0604/">604</a></td>
  <td><a href="/pep-0604/">Complementary syntax for Union[] and Optional[]</a></td>
  <td>Philippe Prados</td>
</tr>
</tbody>
</table>
</section>
</body></html>
`

func TestParse(t *testing.T) {
	proposals, err := parse(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Len(t, proposals, 3)

	p := proposals[2]
	assert.Equal(t, 604, p.Number)
	assert.Equal(t, "Complementary syntax for Union[] and Optional[]", p.Title)
	assert.Equal(t, "https://peps.python.org/pep-0604/", p.URL)
	assert.Equal(t, "Philippe Prados", p.Authors)
	assert.Equal(t, "Standards Track", p.Type)
	assert.Equal(t, "Draft", p.Status)
}

func TestMatch(t *testing.T) {
	proposals, err := parse(strings.NewReader(fixture))
	require.NoError(t, err)

	cases := []struct {
		name    string
		keyword string
		match   MatchType
	}{
		{
			name:    "exact number",
			keyword: "604",
			match:   MatchExact,
		},
		{
			name:    "title word",
			keyword: "syntax",
			match:   MatchTitle,
		},
		{
			name:    "title words",
			keyword: "union optional",
			match:   MatchTitle,
		},
		{
			name:    "author",
			keyword: "prados",
			match:   MatchAuthor,
		},
		{
			name:    "no match",
			keyword: "walrus",
			match:   NoMatch,
		},
	}

	p := proposals[2]
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.match, p.Match(c.keyword))
		})
	}
}

func TestMatchAll(t *testing.T) {
	proposals, err := parse(strings.NewReader(fixture))
	require.NoError(t, err)

	title, _, total := MatchAll(proposals, "484")
	require.Equal(t, 1, total)
	assert.Equal(t, "Type Hints", title[0].Title)

	title, author, total := MatchAll(proposals, "guido")
	assert.Empty(t, title)
	require.Len(t, author, 1)
	assert.Equal(t, 484, author[0].Number)
	assert.Equal(t, 1, total)

	_, _, total = MatchAll(proposals, "pep")
	assert.Equal(t, 1, total)
}
