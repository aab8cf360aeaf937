// Package pep models a PEP plain-text document: an RFC 822 style
// preamble followed by underlined section titles, paragraphs with
// inline markup, literal blocks, bullet lists and a trailing list of
// footnote definitions.
//
// Every block keeps the source lines it was parsed from, so a parsed
// Document can be re-serialized byte for byte with Source.
package pep

import "strings"

// Document is a parsed PEP.
//
// Sections holds the top-level sections in document order. Order is
// meaningful: the motivation precedes the proposal precedes the
// examples, and Source preserves it.
type Document struct {
	Headers   []Header
	Sections  []*Section
	Footnotes []Footnote

	Headings map[string]*Section
	Keywords map[string][]*Section

	keywords map[string]map[*Section]struct{}
	notes    map[int]*Footnote
	prefix   []string // blank lines before any content
	trailing bool     // source ended with a newline
}

// Header is one preamble field, such as "Title" or "Python-Version".
type Header struct {
	Name  string
	Value string

	raw []string
}

// Section is a titled, ordered block of content. Level 1 sections are
// underlined with "=", level 2 sections with "-".
type Section struct {
	Level    int
	Title    string
	Content  []Note
	Sections []*Section

	raw []string // title line, underline, trailing blanks
}

// Note is one piece of section content, either a block (Paragraph,
// CodeBlock, List, FootnoteDef) or an inline fragment inside a
// Paragraph (Text, Literal, Emphasis, Ref).
type Note interface {
	Markdown() string
	source() []string
}

// Paragraph is a run of inline notes.
type Paragraph struct {
	Parts []Note

	raw []string
}

// CodeBlock is an indented literal block introduced by "::".
// Text holds the dedented content; the original indentation survives
// in the raw source lines.
type CodeBlock struct {
	Text string

	raw []string
}

// List is a bullet list.
type List struct {
	Items []ListItem

	raw []string
}

// ListItem is one bullet, with any nested bullets as children.
type ListItem struct {
	Parts []Note
	Items []ListItem
}

// Footnote is a numbered entry of the References section.
type Footnote struct {
	Num  int
	Text string
	URL  string

	raw []string
}

type (
	// Text is plain body text.
	Text string
	// Literal is inline preformatted text, ``like this``.
	Literal string
	// Emphasis is italicized text, *like this*.
	Emphasis string
	// Ref is a numeric footnote marker, [1]_ in the source.
	Ref int
)

func (Text) source() []string     { return nil }
func (Literal) source() []string  { return nil }
func (Emphasis) source() []string { return nil }
func (Ref) source() []string      { return nil }

func (p Paragraph) source() []string { return p.raw }
func (c CodeBlock) source() []string { return c.raw }
func (l List) source() []string      { return l.raw }
func (f Footnote) source() []string  { return f.raw }

// Header returns the value of the named preamble field, or "".
func (d *Document) Header(name string) string {
	for _, h := range d.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// Section returns the section with the given title, at any level.
func (d *Document) Section(title string) *Section {
	return d.Headings[title]
}

// Footnote returns the references entry for the given marker number.
func (d *Document) Footnote(num int) (Footnote, bool) {
	f, ok := d.notes[num]
	if !ok {
		return Footnote{}, false
	}
	return *f, true
}

// Source re-serializes the document. The result is byte-identical to
// the input the document was parsed from.
func (d *Document) Source() string {
	var lines []string
	lines = append(lines, d.prefix...)
	for _, h := range d.Headers {
		lines = append(lines, h.raw...)
	}
	for _, s := range d.Sections {
		lines = appendSection(lines, s)
	}
	out := strings.Join(lines, "\n")
	if d.trailing {
		out += "\n"
	}
	return out
}

func appendSection(lines []string, s *Section) []string {
	lines = append(lines, s.raw...)
	for _, n := range s.Content {
		lines = append(lines, n.source()...)
	}
	for _, sub := range s.Sections {
		lines = appendSection(lines, sub)
	}
	return lines
}

// Refs returns every footnote marker used in the section body,
// without descending into subsections.
func (s *Section) Refs() []int {
	var refs []int
	for _, n := range s.Content {
		refs = append(refs, noteRefs(n)...)
	}
	return refs
}

func noteRefs(n Note) (refs []int) {
	switch v := n.(type) {
	case Ref:
		refs = append(refs, int(v))
	case Paragraph:
		for _, p := range v.Parts {
			refs = append(refs, noteRefs(p)...)
		}
	case List:
		for _, item := range v.Items {
			refs = append(refs, itemRefs(item)...)
		}
	}
	return refs
}

func itemRefs(item ListItem) (refs []int) {
	for _, p := range item.Parts {
		refs = append(refs, noteRefs(p)...)
	}
	for _, child := range item.Items {
		refs = append(refs, itemRefs(child)...)
	}
	return refs
}
