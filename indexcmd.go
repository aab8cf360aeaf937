package main

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/lukpueh/peps/index"
)

func (b *botState) updateProposals() {
	proposals, err := index.Proposals(http.DefaultClient)
	if err != nil {
		panic(err)
	}
	b.setProposals(proposals)

	indexTicker := time.NewTicker(time.Hour * 24)
	for range indexTicker.C {
		proposals, err := index.Proposals(http.DefaultClient)
		if err != nil {
			log.Printf("Error querying index: %v", err)
			continue
		}

		b.setProposals(proposals)
	}
}

func (b *botState) setProposals(proposals []index.Proposal) {
	b.propMu.Lock()
	b.proposals = proposals
	b.propMu.Unlock()
}

func (b *botState) snapshotProposals() []index.Proposal {
	b.propMu.RLock()
	defer b.propMu.RUnlock()
	return b.proposals
}

// pickMatches flattens MatchAll's partitions into one result list.
// Title matches come first; author matches are kept when asked for,
// or when they are all there is.
func pickMatches(fromTitle, fromAuthor []index.Proposal, matchAuthors bool) []index.Proposal {
	if !matchAuthors && len(fromTitle) > 0 {
		return fromTitle
	}
	matches := make([]index.Proposal, 0, len(fromTitle)+len(fromAuthor))
	matches = append(matches, fromTitle...)
	return append(matches, fromAuthor...)
}

func (b *botState) handlePeps(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	// only arg and required, always present
	query := d.Options[0].String()

	var matchAuthors bool
	if len(d.Options) > 1 {
		matchAuthors, _ = d.Options[1].BoolValue()
	}

	log.Printf("%s used peps(%q, %t)", e.User.Tag(), query, matchAuthors)

	if len(query) < 2 || len(query) > 30 {
		b.respondEphemeral(e, failEmbed("Error", "Your query must be between 2 and 30 characters."))
		return
	}

	fromTitle, fromAuthor, total := index.MatchAll(b.snapshotProposals(), query)

	if total == 0 {
		b.respondEphemeral(e, failEmbed("Error", fmt.Sprintf("No results found for %q", query)))
		return
	}

	matches := pickMatches(fromTitle, fromAuthor, matchAuthors)

	if total == 1 {
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Embeds: &[]discord.Embed{matches[0].Display()},
			},
		})
		return
	}

	if len(matches) > 5 {
		matches = matches[:5]
	}

	var fields []discord.EmbedField
	for _, match := range matches {
		fields = append(fields, discord.EmbedField{
			Name:  fmt.Sprintf("PEP %s: %s", strconv.Itoa(match.Number), match.Title),
			Value: fmt.Sprintf("*%s*\n%s, %s\n%s", match.Authors, match.Type, match.Status, match.URL),
		})
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds: &[]discord.Embed{
				{
					Title:       fmt.Sprintf("PEP Index: %d Results", total),
					Description: fmt.Sprintf("Search Term: %q\nMatch on authors: %t", query, matchAuthors),
					Fields:      fields,
					Color:       accentColor,
				},
			},
		},
	})
}
