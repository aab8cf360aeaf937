package pep

import (
	"fmt"
	"regexp"
	"strings"
)

// GrammarRule is one production of the proposed annotation grammar.
type GrammarRule struct {
	Name string
	RHS  string
}

var (
	prodRe  = regexp.MustCompile(`^([a-z_][a-z0-9_]*): (.+)$`)
	identRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
)

// terminals of the host grammar that a production may reference
// without defining. The listing is checked for self-consistency only,
// not against the host language's full grammar.
var terminals = map[string]bool{
	"NAME":   true,
	"NUMBER": true,
	"STRING": true,
}

// Grammar returns the productions of the first literal block that is
// a grammar listing, that is, whose every non-blank line is of the
// form "name: pattern". Nil if the document proposes no grammar.
func (d *Document) Grammar() []GrammarRule {
	for _, s := range d.Sections {
		if rules := sectionGrammar(s); rules != nil {
			return rules
		}
	}
	return nil
}

func sectionGrammar(s *Section) []GrammarRule {
	for _, n := range s.Content {
		block, ok := n.(CodeBlock)
		if !ok {
			continue
		}
		if rules := blockGrammar(block); rules != nil {
			return rules
		}
	}
	for _, sub := range s.Sections {
		if rules := sectionGrammar(sub); rules != nil {
			return rules
		}
	}
	return nil
}

func blockGrammar(block CodeBlock) []GrammarRule {
	var rules []GrammarRule
	for _, line := range strings.Split(block.Text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := prodRe.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		rules = append(rules, GrammarRule{Name: m[1], RHS: m[2]})
	}
	return rules
}

// Refs returns the rule and terminal names referenced on the
// right-hand side, in order of appearance. Quoted literals are not
// references.
func (r GrammarRule) Refs() []string {
	rhs := stripQuoted(r.RHS)
	return identRe.FindAllString(rhs, -1)
}

func stripQuoted(s string) string {
	var b strings.Builder
	quoted := false
	for _, r := range s {
		if r == '\'' {
			quoted = !quoted
			continue
		}
		if !quoted {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CheckGrammar verifies that every non-terminal referenced in the
// grammar listing is defined in the same listing, and that uppercase
// references are known terminals.
func (d *Document) CheckGrammar() []Fault {
	rules := d.Grammar()
	if rules == nil {
		return nil
	}

	defined := map[string]bool{}
	for _, r := range rules {
		defined[r.Name] = true
	}

	var faults []Fault
	for _, r := range rules {
		for _, ref := range r.Refs() {
			if ref == strings.ToUpper(ref) {
				if !terminals[ref] {
					faults = append(faults, Fault{
						Problem: fmt.Sprintf("grammar rule %q references unknown terminal %s", r.Name, ref),
					})
				}
				continue
			}
			if !defined[ref] {
				faults = append(faults, Fault{
					Problem: fmt.Sprintf("grammar rule %q references undefined production %s", r.Name, ref),
				})
			}
		}
	}
	return faults
}
