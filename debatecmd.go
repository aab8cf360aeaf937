package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/lukpueh/peps/pep"
)

func (b *botState) handleGrammar(e *gateway.InteractionCreateEvent, _ *discord.CommandInteraction) {
	log.Printf("%s used grammar", e.User.Tag())

	rules := pep.Cache.Grammar()
	if rules == nil {
		b.respondEphemeral(e, failEmbed("Error", "The proposal contains no grammar listing."))
		return
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds: &[]discord.Embed{grammarEmbed(rules)},
		},
	})
}

func (b *botState) handleDebate(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	var query string
	if len(d.Options) > 0 {
		query = d.Options[0].String()
	}

	log.Printf("%s used debate(%q)", e.User.Tag(), query)

	alts := pep.Cache.Debate()

	if query == "" {
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: debateOverview(alts),
		})
		return
	}

	alt, ok := matchAlternative(alts, query)
	if !ok {
		b.respondEphemeral(e, failEmbed("Error", fmt.Sprintf("No alternative matches %q.", query)))
		return
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds:     &[]discord.Embed{debateEmbed(alt)},
			Components: debateSelect(alts),
		},
	})
}

func (b *botState) handleDebateComponent(e *gateway.InteractionCreateEvent, data discord.ComponentInteraction, action string) {
	sel, ok := data.(*discord.SelectInteraction)
	if ok && len(sel.Values) != 0 {
		action = sel.Values[0]
	}

	log.Printf("%s used debate component(%q)", e.User.Tag(), action)

	alts := pep.Cache.Debate()

	if action == "back" {
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.UpdateMessage,
			Data: debateOverview(alts),
		})
		return
	}

	alt, ok := matchAlternative(alts, action)
	if !ok {
		b.respondEphemeral(e, failEmbed("Error", fmt.Sprintf("Unknown alternative %q.", action)))
		return
	}

	if !b.canNavigate(e) {
		b.respondEphemeral(e, debateEmbed(alt))
		return
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.UpdateMessage,
		Data: &api.InteractionResponseData{
			Embeds:     &[]discord.Embed{debateEmbed(alt)},
			Components: debateSelect(alts),
		},
	})
}

func matchAlternative(alts []pep.Alternative, query string) (pep.Alternative, bool) {
	query = strings.ToLower(query)
	for _, alt := range alts {
		if strings.Contains(strings.ToLower(alt.Title), query) {
			return alt, true
		}
	}
	return pep.Alternative{}, false
}

func debateOverview(alts []pep.Alternative) *api.InteractionResponseData {
	var b strings.Builder
	for i, alt := range alts {
		var pro, con int
		for _, e := range alt.Entries {
			switch e.Stance {
			case pep.StancePro:
				pro++
			case pep.StanceCon:
				con++
			}
		}
		fmt.Fprintf(&b, "%d. **%s** (%d pro, %d con)\n", i+1, alt.Title, pro, con)
	}

	return &api.InteractionResponseData{
		Embeds: &[]discord.Embed{{
			Title:       "PEP 604: Dissenting Opinion",
			URL:         pep.Page,
			Description: b.String(),
			Color:       accentColor,
		}},
		Components: debateSelect(alts),
	}
}

func debateSelect(alts []pep.Alternative) *discord.ContainerComponents {
	options := []discord.SelectOption{pep.GoBack}
	for i, alt := range alts {
		options = append(options, discord.SelectOption{
			Label: strconv.Itoa(i+1) + ". " + alt.Title,
			Value: alt.Title,
		})
	}

	return discord.ComponentsPtr(
		&discord.StringSelectComponent{
			CustomID:    "debate.alt",
			Placeholder: "View Alternatives",
			Options:     options,
		},
	)
}
