package pep

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	headerRe   = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9-]*): ?(.*)$`)
	footnoteRe = regexp.MustCompile(`^\.\. \[(\d+)\] (.*)$`)
	bulletRe   = regexp.MustCompile(`^( *)- (.*)$`)
	urlRe      = regexp.MustCompile(`\((https?://[^)\s]+)\)`)
	refRe      = regexp.MustCompile(`^\[(\d+)\]_`)
)

// Parse reads a PEP document from its plain-text source.
//
// Unknown constructs degrade to plain paragraphs; a section underline
// whose length does not match its title is an error, as is body
// content before the first section title.
func Parse(src string) (*Document, error) {
	doc := &Document{
		Headings: make(map[string]*Section),
		Keywords: make(map[string][]*Section),
		keywords: make(map[string]map[*Section]struct{}),
		notes:    make(map[int]*Footnote),
	}

	lines := strings.Split(src, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		doc.trailing = true
		lines = lines[:n-1]
	}

	i := 0
	for i < len(lines) && lines[i] == "" {
		doc.prefix = append(doc.prefix, lines[i])
		i++
	}
	i = parseHeaders(doc, lines, i)

	var l1, l2 *Section

	// add appends a note to the deepest open section, indexing its
	// keywords as it goes.
	add := func(note Note) error {
		node := l2
		if node == nil {
			node = l1
		}
		if node == nil {
			return fmt.Errorf("content before first section title")
		}
		node.Content = append(node.Content, note)
		doc.addKeywords(note, node)
		return nil
	}

	for i < len(lines) {
		line := lines[i]

		switch {
		case line == "":
			// Stray blank line; blocks normally consume their own
			// trailing blanks.
			if l2 != nil {
				l2.raw = append(l2.raw, line)
			} else if l1 != nil {
				l1.raw = append(l1.raw, line)
			} else {
				doc.prefix = append(doc.prefix, line)
			}
			i++

		case isUnderlined(lines, i):
			level, sec, next, err := parseHeading(lines, i)
			if err != nil {
				return nil, err
			}
			switch level {
			case 1:
				if l1 != nil {
					if l2 != nil {
						l1.Sections = append(l1.Sections, l2)
					}
					doc.Sections = append(doc.Sections, l1)
				}
				l1, l2 = sec, nil
			case 2:
				if l1 == nil {
					return nil, fmt.Errorf("line %d: subsection %q before any section", i+1, sec.Title)
				}
				if l2 != nil {
					l1.Sections = append(l1.Sections, l2)
				}
				l2 = sec
			}
			doc.Headings[sec.Title] = sec
			doc.addKeywords(Text(sec.Title), sec)
			i = next

		case footnoteRe.MatchString(line):
			note, next := parseFootnote(lines, i)
			if err := add(note); err != nil {
				return nil, err
			}
			doc.Footnotes = append(doc.Footnotes, note)
			i = next

		case bulletRe.MatchString(line):
			list, next, err := parseList(lines, i)
			if err != nil {
				return nil, err
			}
			if err := add(list); err != nil {
				return nil, err
			}
			i = next

		default:
			para, literal, next := parseParagraph(lines, i)
			if err := add(para); err != nil {
				return nil, err
			}
			i = next
			if literal && i < len(lines) && indented(lines[i]) {
				block, next := parseCodeBlock(lines, i)
				if err := add(block); err != nil {
					return nil, err
				}
				i = next
			}
		}
	}

	if l1 != nil {
		if l2 != nil {
			l1.Sections = append(l1.Sections, l2)
		}
		doc.Sections = append(doc.Sections, l1)
	}

	for idx := range doc.Footnotes {
		doc.notes[doc.Footnotes[idx].Num] = &doc.Footnotes[idx]
	}

	doc.keywords = nil
	return doc, nil
}

func parseHeaders(doc *Document, lines []string, i int) int {
	for i < len(lines) {
		line := lines[i]
		if line == "" {
			// Preamble blanks belong to the last header.
			if n := len(doc.Headers); n > 0 {
				doc.Headers[n-1].raw = append(doc.Headers[n-1].raw, line)
				i++
				continue
			}
			return i
		}
		m := headerRe.FindStringSubmatch(line)
		if m == nil || isUnderlined(lines, i) {
			return i
		}
		doc.Headers = append(doc.Headers, Header{
			Name:  m[1],
			Value: m[2],
			raw:   []string{line},
		})
		i++
	}
	return i
}

// isUnderlined reports whether lines[i] is a section title, that is,
// a non-indented line followed by a run of "=" or "-".
func isUnderlined(lines []string, i int) bool {
	if lines[i] == "" || indented(lines[i]) || i+1 >= len(lines) {
		return false
	}
	next := lines[i+1]
	if next == "" {
		return false
	}
	return strings.Trim(next, "=") == "" || strings.Trim(next, "-") == ""
}

func parseHeading(lines []string, i int) (level int, sec *Section, next int, err error) {
	title, underline := lines[i], lines[i+1]
	if len(underline) != len(title) {
		return 0, nil, 0, fmt.Errorf("line %d: underline length %d does not match title %q", i+2, len(underline), title)
	}

	level = 1
	if underline[0] == '-' {
		level = 2
	}
	sec = &Section{
		Level: level,
		Title: title,
		raw:   []string{title, underline},
	}

	next = i + 2
	for next < len(lines) && lines[next] == "" {
		sec.raw = append(sec.raw, lines[next])
		next++
	}
	return level, sec, next, nil
}

func parseFootnote(lines []string, i int) (Footnote, int) {
	m := footnoteRe.FindStringSubmatch(lines[i])
	num, _ := strconv.Atoi(m[1])

	note := Footnote{
		Num:  num,
		Text: m[2],
		raw:  []string{lines[i]},
	}

	next := i + 1
	for next < len(lines) && indented(lines[next]) {
		note.raw = append(note.raw, lines[next])
		note.Text += " " + strings.TrimSpace(lines[next])
		next++
	}
	if m := urlRe.FindStringSubmatch(note.Text); m != nil {
		note.URL = m[1]
		note.Text = strings.TrimSpace(strings.Replace(note.Text, m[0], "", 1))
	}
	for next < len(lines) && lines[next] == "" {
		note.raw = append(note.raw, lines[next])
		next++
	}
	return note, next
}

func parseParagraph(lines []string, i int) (para Paragraph, literal bool, next int) {
	var text []string
	next = i
	for next < len(lines) && lines[next] != "" {
		para.raw = append(para.raw, lines[next])
		text = append(text, strings.TrimSpace(lines[next]))
		next++
	}
	for next < len(lines) && lines[next] == "" {
		para.raw = append(para.raw, lines[next])
		next++
	}

	joined := strings.Join(text, " ")
	if strings.HasSuffix(joined, "::") {
		literal = true
	}
	para.Parts = parseInline(joined)
	return para, literal, next
}

func parseCodeBlock(lines []string, i int) (CodeBlock, int) {
	var block CodeBlock
	next := i
	for next < len(lines) {
		line := lines[next]
		if line != "" && !indented(line) {
			break
		}
		if line == "" {
			// Blanks end the block unless more indented content follows.
			j := next
			for j < len(lines) && lines[j] == "" {
				j++
			}
			if j >= len(lines) || !indented(lines[j]) {
				break
			}
		}
		block.raw = append(block.raw, line)
		next++
	}

	indent := -1
	for _, line := range block.raw {
		if line == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " "))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	var content []string
	for _, line := range block.raw {
		if line == "" {
			content = append(content, "")
			continue
		}
		content = append(content, line[indent:])
	}
	block.Text = strings.Join(content, "\n")

	for next < len(lines) && lines[next] == "" {
		block.raw = append(block.raw, lines[next])
		next++
	}
	return block, next
}

func parseList(lines []string, i int) (List, int, error) {
	var list List
	next := i
	for next < len(lines) {
		line := lines[next]
		if line == "" {
			// The list continues across blanks only into another
			// bullet or a continuation line.
			j := next
			for j < len(lines) && lines[j] == "" {
				j++
			}
			if j >= len(lines) || (!bulletRe.MatchString(lines[j]) && !indented(lines[j])) {
				break
			}
		} else if !indented(line) && !bulletRe.MatchString(line) {
			break
		}
		list.raw = append(list.raw, line)
		next++
	}

	items, _, err := parseItems(list.raw, 0, 0)
	if err != nil {
		return List{}, 0, err
	}
	list.Items = items

	for next < len(lines) && lines[next] == "" {
		list.raw = append(list.raw, lines[next])
		next++
	}
	return list, next, nil
}

// parseItems builds the items of a list at the given marker indent,
// recursing for deeper markers. It returns the items and the index of
// the first unconsumed line.
func parseItems(lines []string, i, indent int) ([]ListItem, int, error) {
	var items []ListItem
	var text []string

	flush := func() {
		if text == nil {
			return
		}
		items = append(items, ListItem{Parts: parseInline(strings.Join(text, " "))})
		text = nil
	}

	for i < len(lines) {
		line := lines[i]
		if line == "" {
			i++
			continue
		}

		if m := bulletRe.FindStringSubmatch(line); m != nil {
			depth := len(m[1])
			switch {
			case depth == indent:
				flush()
				text = []string{strings.TrimSpace(m[2])}
				i++
			case depth > indent:
				flush()
				if len(items) == 0 {
					return nil, 0, fmt.Errorf("list item indented too deep: %q", line)
				}
				children, next, err := parseItems(lines, i, depth)
				if err != nil {
					return nil, 0, err
				}
				last := &items[len(items)-1]
				last.Items = append(last.Items, children...)
				i = next
			default:
				flush()
				return items, i, nil
			}
			continue
		}

		depth := len(line) - len(strings.TrimLeft(line, " "))
		if depth <= indent {
			flush()
			return items, i, nil
		}
		if text == nil {
			return nil, 0, fmt.Errorf("list continuation without item: %q", line)
		}
		text = append(text, strings.TrimSpace(line))
		i++
	}
	flush()
	return items, i, nil
}

// parseInline splits body text into Text, Literal, Emphasis and Ref
// fragments. Unterminated markup degrades to plain text.
func parseInline(s string) []Note {
	var parts []Note
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			parts = append(parts, Text(plain.String()))
			plain.Reset()
		}
	}

	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "``"):
			end := strings.Index(s[i+2:], "``")
			if end < 0 {
				plain.WriteString(s[i:])
				i = len(s)
				break
			}
			flush()
			parts = append(parts, Literal(s[i+2:i+2+end]))
			i += end + 4

		case s[i] == '*':
			end := strings.IndexByte(s[i+1:], '*')
			if end < 0 {
				plain.WriteString(s[i:])
				i = len(s)
				break
			}
			flush()
			parts = append(parts, Emphasis(s[i+1:i+1+end]))
			i += end + 2

		case s[i] == '[':
			m := refRe.FindStringSubmatch(s[i:])
			if m == nil {
				plain.WriteByte(s[i])
				i++
				break
			}
			flush()
			num, _ := strconv.Atoi(m[1])
			parts = append(parts, Ref(num))
			i += len(m[0])

		default:
			plain.WriteByte(s[i])
			i++
		}
	}
	flush()
	return parts
}

func indented(line string) bool {
	return strings.HasPrefix(line, " ")
}
