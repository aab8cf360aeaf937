package pep

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
)

// Page is the canonical location of the rendered proposal.
const Page = "https://www.python.org/dev/peps/pep-0604/"

func (d *Document) addKeywords(note Note, node *Section) {
	var text string
	switch v := note.(type) {
	case Text:
		text = string(v)
	case Literal:
		text = string(v)
	case Emphasis:
		text = string(v)
	case CodeBlock:
		text = v.Text
	case Footnote:
		text = v.Text
	case Paragraph:
		for _, n := range v.Parts {
			d.addKeywords(n, node)
		}
	case List:
		for _, item := range v.Items {
			d.addItemKeywords(item, node)
		}
	}

	for _, f := range strings.Fields(text) {
		key := strings.ToLower(strings.Trim(f, ".,:;()`\"'"))
		if key == "" {
			continue
		}
		val := d.keywords[key]
		if val == nil {
			d.keywords[key] = make(map[*Section]struct{})
		}

		if _, ok := d.keywords[key][node]; ok {
			continue
		}

		d.keywords[key][node] = struct{}{}
		d.Keywords[key] = append(d.Keywords[key], node)
	}
}

func (d *Document) addItemKeywords(item ListItem, node *Section) {
	for _, n := range item.Parts {
		d.addKeywords(n, node)
	}
	for _, child := range item.Items {
		d.addItemKeywords(child, node)
	}
}

// Search returns the sections matching every word of the query. An
// exact title match short-circuits to a single result.
func (d *Document) Search(query string) []*Section {
	query = strings.ToLower(query)
	fields := strings.Fields(query)

	switch len(fields) {
	case 0:
		return nil
	}

	results := map[*Section]int{}

	for _, f := range fields {
		for _, node := range d.Keywords[f] {

			// exact match
			if strings.ToLower(node.Title) == query {
				return []*Section{node}
			}

			results[node]++
		}
	}

	keys := make([]*Section, 0, len(results))
	for n, num := range results {
		if num == len(fields) {
			keys = append(keys, n)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		n1 := keys[i]
		n2 := keys[j]

		var basic bool
		if n1.Level != n2.Level {
			// show deeper matches first - more specific
			basic = n2.Level < n1.Level
		} else {
			basic = n1.Title < n2.Title
		}

		title1, title2 := strings.ToLower(n1.Title), strings.ToLower(n2.Title)
		c1, c2 := strings.Contains(title1, query), strings.Contains(title2, query)
		switch {
		case c1 && c2:
			return basic
		case c1:
			return true
		case c2:
			return false
		}

		var desc1, desc2 strings.Builder
		for _, c := range n1.Content {
			desc1.WriteString(strings.ToLower(c.Markdown()))
		}
		for _, c := range n2.Content {
			desc2.WriteString(strings.ToLower(c.Markdown()))
		}

		c1, c2 = strings.Contains(desc1.String(), query), strings.Contains(desc2.String(), query)
		switch {
		case c1 && c2:
			return basic
		case c1:
			return true
		case c2:
			return false
		}

		return basic
	})
	return keys
}

func anchor(title string) string {
	slug := strings.ToLower(title)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ':
			return '-'
		}
		return -1
	}, slug)
	return Page + "#" + slug
}

// Match is the one-line search-result form of the section.
func (s *Section) Match() string {
	return fmt.Sprintf("> [%s](%s)\n", s.Title, anchor(s.Title))
}

func (s *Section) heading() string {
	switch s.Level {
	case 1:
		return fmt.Sprintf("> [__**%s**__](%s)\n", s.Title, anchor(s.Title))
	}
	return fmt.Sprintf("> [__%s__](%s)\n", s.Title, anchor(s.Title))
}

// Render writes the section content as Discord markdown, truncating
// once the limit is exceeded.
func (s *Section) Render(limit int) (string, bool) {
	if len(s.Content) == 0 && len(s.Sections) == 0 {
		return "", false
	}

	var more bool

	var b strings.Builder
	for _, c := range s.Content {
		if b.Len() > limit {
			more = true
			break
		}
		b.WriteString(c.Markdown())
		b.WriteRune('\n')
	}

	for _, sub := range s.Sections {
		if b.Len() > limit {
			more = true
			break
		}
		b.WriteString(sub.heading())
		md, _ := sub.Render(limit - b.Len())
		b.WriteString(md)
		b.WriteRune('\n')
	}

	if more {
		b.WriteString("*More content omitted*")
	}

	return b.String(), more
}

func (p Paragraph) Markdown() string {
	switch len(p.Parts) {
	case 0:
		return ""
	case 1:
		return p.Parts[0].Markdown()
	}

	var b strings.Builder
	for _, part := range p.Parts {
		b.WriteString(part.Markdown())
	}

	return strings.TrimSpace(b.String()) + "\n"
}

func (t Text) Markdown() string {
	return string(t)
}

func (l Literal) Markdown() string {
	code := string(l)
	if code == "``" {
		code = " `` "
	}
	return "`" + code + "`"
}

func (e Emphasis) Markdown() string {
	return "*" + string(e) + "*"
}

func (r Ref) Markdown() string {
	return fmt.Sprintf("[%d]", int(r))
}

func (c CodeBlock) Markdown() string {
	return "```py\n" + c.Text + "\n```\n"
}

const bullet = "  • "

func (l List) Markdown() string {
	var b strings.Builder
	for i, item := range l.Items {
		if i > 0 {
			b.WriteRune('\n')
		}
		b.WriteString(item.markdown(""))
	}
	return b.String()
}

func (item ListItem) markdown(indent string) string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(bullet)
	for _, part := range item.Parts {
		b.WriteString(part.Markdown())
	}
	for _, child := range item.Items {
		b.WriteRune('\n')
		b.WriteString(child.markdown(indent + "  "))
	}
	return b.String()
}

func (f Footnote) Markdown() string {
	if f.URL != "" {
		return fmt.Sprintf("[%d] [%s](%s)", f.Num, f.Text, f.URL)
	}
	return fmt.Sprintf("[%d] %s", f.Num, f.Text)
}

var (
	Cache *Document

	TOC           *api.InteractionResponseData
	Subcomponents = map[string][]discord.SelectOption{}
)

var (
	tocOptions []discord.SelectOption
	GoBack     = discord.SelectOption{
		Label: "Go Back",
		Value: "back",
		Emoji: &discord.ComponentEmoji{Name: "↩️"},
	}
)

func init() {
	var err error
	Cache, err = Parse(source)
	if err != nil {
		panic(err)
	}
	for i, node := range Cache.Sections {
		prefix := strconv.Itoa(i+1) + ". "
		tocOptions = append(tocOptions, discord.SelectOption{
			Label: prefix + node.Title,
			Value: node.Title,
		})

		Subcomponents[node.Title] = append(Subcomponents[node.Title], GoBack)

		for i, sub := range node.Sections {
			prefix := strconv.Itoa(i+1) + ". "
			Subcomponents[node.Title] = append(Subcomponents[node.Title], discord.SelectOption{
				Label: prefix + sub.Title,
				Value: sub.Title,
			})
		}
	}
	TOC = &api.InteractionResponseData{
		Flags: api.EphemeralResponse,
		Embeds: &[]discord.Embed{{
			Title: "PEP 604 - Table of Contents",
			Description: `Use the component below to select a section.

Search for a full section title to view its contents.
**Example**:

/pep query:motivation
/pep query:strong proposition
/pep query:incompatible changes`,
			Color: 0x3776AB,
		}},
		Components: discord.ComponentsPtr(
			&discord.StringSelectComponent{
				CustomID:    "pep.toc",
				Placeholder: "View Sections",
				Options:     tocOptions,
			},
		),
	}
}

// SectionsSelect builds the select component offered alongside an
// ambiguous search result.
func SectionsSelect(sections []*Section) *discord.ContainerComponents {
	var options []discord.SelectOption

	options = append(options, GoBack)

	for i, node := range sections {
		prefix := strconv.Itoa(i+1) + ". "
		options = append(options, discord.SelectOption{
			Label: prefix + node.Title,
			Value: node.Title,
		})
	}

	return discord.ComponentsPtr(
		&discord.StringSelectComponent{
			Placeholder: "Select",
			CustomID:    "pep.toc",
			Options:     options,
		},
	)
}
