package pep

import (
	"fmt"
	"strings"
)

// Fault is one structural problem found in the document.
type Fault struct {
	Section string
	Problem string
}

func (f Fault) Error() string {
	if f.Section == "" {
		return f.Problem
	}
	return fmt.Sprintf("%s: %s", f.Section, f.Problem)
}

// Validate checks the structural invariants of the document: every
// section has a non-empty title, every footnote marker resolves to a
// references entry and every entry is referenced, inline literal
// markers are balanced, literal blocks are non-empty, and the grammar
// listing is self-consistent.
func (d *Document) Validate() []Fault {
	var faults []Fault

	used := map[int]bool{}
	for _, s := range d.Sections {
		faults = append(faults, d.validateSection(s, used)...)
	}

	for _, f := range d.Footnotes {
		if !used[f.Num] {
			faults = append(faults, Fault{
				Problem: fmt.Sprintf("footnote [%d] is never referenced", f.Num),
			})
		}
	}

	faults = append(faults, d.CheckGrammar()...)
	return faults
}

func (d *Document) validateSection(s *Section, used map[int]bool) []Fault {
	var faults []Fault

	if strings.TrimSpace(s.Title) == "" {
		faults = append(faults, Fault{Problem: "section with empty title"})
	}

	for _, ref := range s.Refs() {
		used[ref] = true
		if _, ok := d.notes[ref]; !ok {
			faults = append(faults, Fault{
				Section: s.Title,
				Problem: fmt.Sprintf("footnote marker [%d]_ has no references entry", ref),
			})
		}
	}

	for _, n := range s.Content {
		switch v := n.(type) {
		case Paragraph:
			text := strings.Join(v.raw, " ")
			if strings.Count(text, "``")%2 != 0 {
				faults = append(faults, Fault{
					Section: s.Title,
					Problem: "unbalanced inline literal markers",
				})
			}
		case CodeBlock:
			if strings.TrimSpace(v.Text) == "" {
				faults = append(faults, Fault{
					Section: s.Title,
					Problem: "empty literal block",
				})
			}
		}
	}

	for _, sub := range s.Sections {
		faults = append(faults, d.validateSection(sub, used)...)
	}
	return faults
}
