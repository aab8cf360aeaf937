package main

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/lukpueh/peps/pep"
)

const (
	sectionLimit = 1000

	accentColor = 0x3776AB
)

func sectionEmbed(s *pep.Section) discord.Embed {
	md, _ := s.Render(sectionLimit)
	return discord.Embed{
		Title:       fmt.Sprintf("PEP 604: %s", s.Title),
		URL:         pep.Page,
		Description: md,
		Color:       accentColor,
		Footer: &discord.EmbedFooter{
			Text: pep.Page,
		},
	}
}

func grammarEmbed(rules []pep.GrammarRule) discord.Embed {
	var b strings.Builder
	b.WriteString("```\n")
	for _, r := range rules {
		fmt.Fprintf(&b, "%s: %s\n", r.Name, r.RHS)
	}
	b.WriteString("```")

	return discord.Embed{
		Title:       "PEP 604: Proposed annotation grammar",
		URL:         pep.Page,
		Description: b.String(),
		Color:       accentColor,
		Footer: &discord.EmbedFooter{
			Text: pep.Page,
		},
	}
}

func debateEmbed(alt pep.Alternative) discord.Embed {
	return discord.Embed{
		Title:       fmt.Sprintf("Dissenting Opinion: %s", alt.Title),
		URL:         pep.Page,
		Description: alt.Markdown(),
		Color:       accentColor,
		Footer: &discord.EmbedFooter{
			Text: pep.Page,
		},
	}
}

func aliasList(aliases map[string]string) discord.Embed {
	if len(aliases) == 0 {
		return discord.Embed{
			Title:       "Aliases",
			Description: "No aliases configured.",
			Color:       accentColor,
		}
	}

	var b strings.Builder
	for alias, query := range aliases {
		fmt.Fprintf(&b, "**%s** → `%s`\n", alias, query)
	}
	return discord.Embed{
		Title:       "Aliases",
		Description: b.String(),
		Color:       accentColor,
	}
}

func failEmbed(title, description string) discord.Embed {
	return discord.Embed{
		Title:       title,
		Description: description,
		Color:       0xEE0000,
	}
}
