package pep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammar(t *testing.T) {
	doc, err := Parse(Raw())
	require.NoError(t, err)

	rules := doc.Grammar()
	require.Len(t, rules, 3)

	assert.Equal(t, "annotation", rules[0].Name)
	assert.Equal(t, "type_expr", rules[0].RHS)
	assert.Equal(t, "type_expr", rules[1].Name)
	assert.Equal(t, "atom_type", rules[2].Name)

	assert.Empty(t, doc.CheckGrammar())
}

func TestGrammarRefs(t *testing.T) {
	cases := []struct {
		name string
		rule GrammarRule
		refs []string
	}{
		{
			name: "single",
			rule: GrammarRule{Name: "annotation", RHS: "type_expr"},
			refs: []string{"type_expr"},
		},
		{
			name: "quoted literals skipped",
			rule: GrammarRule{Name: "type_expr", RHS: "atom_type ('|' atom_type)* ['?']"},
			refs: []string{"atom_type", "atom_type"},
		},
		{
			name: "terminal",
			rule: GrammarRule{Name: "atom_type", RHS: "NAME ['[' type_expr (',' type_expr)* ']']"},
			refs: []string{"NAME", "type_expr", "type_expr"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.refs, c.rule.Refs())
		})
	}
}

func TestCheckGrammarUnknownTerminal(t *testing.T) {
	src := `First
=====

Grammar::

    annotation: WOBBLE
`

	doc, err := Parse(src)
	require.NoError(t, err)

	faults := doc.CheckGrammar()
	require.Len(t, faults, 1)
	assert.Contains(t, faults[0].Problem, "unknown terminal WOBBLE")
}

func TestGrammarAbsent(t *testing.T) {
	src := `First
=====

Example::

    assert int | str == Union[int, str]
`

	doc, err := Parse(src)
	require.NoError(t, err)

	assert.Nil(t, doc.Grammar())
	assert.Empty(t, doc.CheckGrammar())
}
