package main

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/lukpueh/peps/pep"
)

type interactionData struct {
	id      string
	created time.Time
	token   string
	userID  discord.UserID
	query   string
}

var (
	interactionMap = map[string]*interactionData{}
	mu             sync.Mutex
)

func (b *botState) gcInteractionData() {
	mapTicker := time.NewTicker(time.Minute * 5)
	for range mapTicker.C {
		now := time.Now()

		var expired []*interactionData
		mu.Lock()
		for _, data := range interactionMap {
			if now.After(data.created.Add(time.Minute * 5)) {
				delete(interactionMap, data.id)
				expired = append(expired, data)
			}
		}
		mu.Unlock()

		for _, data := range expired {
			if data.token == "" {
				continue
			}
			b.state.EditInteractionResponse(b.appID, data.token, api.EditInteractionResponseData{
				Components: discord.ComponentsPtr(),
			})
		}
	}
}

func (b *botState) handlePep(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	// only arg and required, always present
	query := d.Options[0].String()
	if alias, ok := b.cfg.Aliases[query]; ok {
		query = alias
	}

	log.Printf("%s used pep(%q)", e.User.Tag(), query)

	if len(query) < 3 || len(query) > 30 {
		embed := failEmbed("Error", "Your query must be between 3 and 30 characters.")
		b.respondEphemeral(e, embed)
		return
	}

	sections := pep.Cache.Search(query)

	switch len(sections) {
	case 0:
		// No match, offer the table of contents instead.
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: pep.TOC,
		})
		return

	case 1:
		mu.Lock()
		interactionMap[e.ID.String()] = &interactionData{
			id:      e.ID.String(),
			created: time.Now(),
			token:   e.Token,
			userID:  e.User.ID,
			query:   query,
		}
		mu.Unlock()

		section := sections[0]
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Embeds:     &[]discord.Embed{sectionEmbed(section)},
				Components: sectionComponents(section),
			},
		})
		return
	}

	var b2 strings.Builder
	for _, s := range sections {
		b2.WriteString(s.Match())
	}
	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Flags: api.EphemeralResponse,
			Embeds: &[]discord.Embed{{
				Title:       fmt.Sprintf("PEP 604: %d Results", len(sections)),
				Description: b2.String(),
				Color:       accentColor,
			}},
			Components: pep.SectionsSelect(sections),
		},
	})
}

func (b *botState) handlePepComponent(e *gateway.InteractionCreateEvent, data discord.ComponentInteraction, action string) {
	sel, ok := data.(*discord.SelectInteraction)
	if ok && len(sel.Values) != 0 {
		action = sel.Values[0]
	}

	log.Printf("%s used pep component(%q)", e.User.Tag(), action)

	if action == "back" {
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.UpdateMessage,
			Data: pep.TOC,
		})
		return
	}

	section := pep.Cache.Section(action)
	if section == nil {
		b.respondEphemeral(e, failEmbed("Error", fmt.Sprintf("Unknown section %q.", action)))
		return
	}

	// Rewriting the shared response is restricted; everyone else
	// gets their own ephemeral copy.
	if !b.canNavigate(e) {
		b.respondEphemeral(e, sectionEmbed(section))
		return
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.UpdateMessage,
		Data: &api.InteractionResponseData{
			Embeds:     &[]discord.Embed{sectionEmbed(section)},
			Components: sectionComponents(section),
		},
	})
}

// canNavigate reports whether the user may rewrite the shared
// interaction response. The interaction's owner always may; in guilds
// everyone else needs one of the configured pep roles or
// administrator permission.
func (b *botState) canNavigate(e *gateway.InteractionCreateEvent) bool {
	if e.GuildID == discord.NullGuildID || e.Member == nil {
		return true
	}

	if e.Message != nil && e.Message.Interaction != nil {
		owner := e.Message.Interaction.User.ID
		mu.Lock()
		if data, ok := interactionMap[e.Message.Interaction.ID.String()]; ok {
			owner = data.userID
		}
		mu.Unlock()
		if owner == e.User.ID {
			return true
		}
	}

	if hasPepRole(b.cfg, e.Member.RoleIDs) {
		return true
	}

	// Check admin last to reduce total API calls.
	perms, err := b.state.Permissions(e.ChannelID, e.User.ID)
	if err != nil {
		return false
	}
	return perms.Has(discord.PermissionAdministrator)
}

func hasPepRole(cfg configuration, roles []discord.RoleID) bool {
	for _, role := range roles {
		if _, ok := cfg.Permissions.Pep[discord.Snowflake(role)]; ok {
			return true
		}
	}
	return false
}

func (b *botState) handlePepText(m *gateway.MessageCreateEvent, queries []string) {
	for _, query := range queries {
		log.Printf("%s used pep(%q) text version", m.Author.Tag(), query)

		if alias, ok := b.cfg.Aliases[query]; ok {
			query = alias
		}

		sections := pep.Cache.Search(query)
		if len(sections) != 1 {
			b.state.React(m.ChannelID, m.ID, "😕")
			continue
		}

		b.state.SendEmbedReply(m.ChannelID, m.ID, sectionEmbed(sections[0]))
	}
}

func sectionComponents(section *pep.Section) *discord.ContainerComponents {
	if options, ok := pep.Subcomponents[section.Title]; ok && len(options) > 1 {
		return discord.ComponentsPtr(
			&discord.StringSelectComponent{
				CustomID:    "pep.toc",
				Placeholder: "View Subsections",
				Options:     options,
			},
		)
	}
	return nil
}

func (b *botState) respondEphemeral(e *gateway.InteractionCreateEvent, embed discord.Embed) {
	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Flags:  api.EphemeralResponse,
			Embeds: &[]discord.Embed{embed},
		},
	})
}
