package pep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebate(t *testing.T) {
	doc, err := Parse(Raw())
	require.NoError(t, err)

	alts := doc.Debate()
	require.Len(t, alts, 3)

	assert.Equal(t, "Add a new operator for Union[type1, type2]?", alts[0].Title)
	assert.Equal(t, "Add a new operator ? for Optional[type]?", alts[1].Title)
	assert.Equal(t, "Use the syntax (int, str) for Union[int, str]?", alts[2].Title)

	var stances []Stance
	for _, e := range alts[0].Entries {
		stances = append(stances, e.Stance)
	}
	assert.Equal(t, []Stance{StancePro, StancePro, StanceCon, StanceCon}, stances)

	// Both CON claims of the first alternative carry a rebuttal.
	require.Len(t, alts[0].Entries[2].Rebuttals, 1)
	require.Len(t, alts[0].Entries[3].Rebuttals, 1)

	rebuttal := alts[0].Entries[2].Rebuttals[0]
	assert.Equal(t, StanceRebuttal, rebuttal.Stance)
	require.NotEmpty(t, rebuttal.Claim)
	_, ok := rebuttal.Claim[0].(Emphasis)
	assert.True(t, ok, "rebuttals are italicized")

	assert.Empty(t, alts[2].Entries[0].Rebuttals)
}

func TestDebateMarkdown(t *testing.T) {
	doc, err := Parse(Raw())
	require.NoError(t, err)

	alts := doc.Debate()
	require.NotEmpty(t, alts)

	md := alts[0].Markdown()
	assert.Contains(t, md, "**PRO:**")
	assert.Contains(t, md, "**CON:**")
	assert.Contains(t, md, "> *")
}

func TestDebateAbsent(t *testing.T) {
	src := `First
=====

Nothing to argue about.
`

	doc, err := Parse(src)
	require.NoError(t, err)
	assert.Nil(t, doc.Debate())
}

func TestStanceString(t *testing.T) {
	assert.Equal(t, "PRO", StancePro.String())
	assert.Equal(t, "CON", StanceCon.String())
	assert.Equal(t, "REBUTTAL", StanceRebuttal.String())
}
