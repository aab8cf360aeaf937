package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukpueh/peps/pep"
)

func TestSectionEmbed(t *testing.T) {
	section := pep.Cache.Section("Motivation")
	require.NotNil(t, section)

	embed := sectionEmbed(section)
	assert.Equal(t, "PEP 604: Motivation", embed.Title)
	assert.Equal(t, pep.Page, embed.URL)
	assert.NotEmpty(t, embed.Description)
	assert.LessOrEqual(t, len(embed.Description), 4096)
}

func TestGrammarEmbed(t *testing.T) {
	rules := pep.Cache.Grammar()
	require.NotEmpty(t, rules)

	embed := grammarEmbed(rules)
	assert.Contains(t, embed.Description, "annotation: type_expr")
	assert.Contains(t, embed.Description, "```")
}

func TestDebateEmbed(t *testing.T) {
	alts := pep.Cache.Debate()
	require.NotEmpty(t, alts)

	embed := debateEmbed(alts[0])
	assert.Contains(t, embed.Title, alts[0].Title)
	assert.Contains(t, embed.Description, "**PRO:**")
}

func TestAliasList(t *testing.T) {
	embed := aliasList(nil)
	assert.Equal(t, "No aliases configured.", embed.Description)

	embed = aliasList(map[string]string{"union": "Strong proposition"})
	assert.Contains(t, embed.Description, "**union**")
}
