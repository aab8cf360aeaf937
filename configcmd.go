package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/lukpueh/peps/index"
)

func (b *botState) handleConfig(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	// only arg and required, always present

	var embed discord.Embed

block:
	switch grp := d.Options[0]; grp.Name {
	case "user":
		switch cmd := grp.Options[0]; cmd.Name {
		case "ignore":
			user, _ := cmd.Options[0].SnowflakeValue()

			if ok := b.canIgnore(e.GuildID, user); !ok {
				embed = failEmbed("Error", fmt.Sprintf("You cannot ignore <@!%s>.", user))
				break block
			}

			if _, ok := b.cfg.Blacklist[user]; ok {
				embed = failEmbed("Error", fmt.Sprintf("<@!%s> is already being ignored.", user))
				break block
			}

			b.cfg.Blacklist[user] = struct{}{}
			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("<@!%s> is now going to be ignored from all commands.", user),
				Color:       accentColor,
			}

		case "unignore":
			user, _ := cmd.Options[0].SnowflakeValue()

			if _, ok := b.cfg.Blacklist[user]; !ok {
				embed = failEmbed("Error", fmt.Sprintf("<@!%s> is not being ignored.", user))
				break block
			}

			delete(b.cfg.Blacklist, user)
			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("<@!%s> is now unignored.", user),
				Color:       accentColor,
			}

		case "ignorelist":
			var sb strings.Builder
			for user := range b.cfg.Blacklist {
				fmt.Fprintf(&sb, "<@!%s>\n", user)
			}
			if sb.Len() == 0 {
				sb.WriteString("Nobody is being ignored.")
			}
			embed = discord.Embed{
				Title:       "Ignored users",
				Description: sb.String(),
				Color:       accentColor,
			}
		}

	case "index":
		switch cmd := grp.Options[0]; cmd.Name {
		case "refresh":
			proposals, err := index.Proposals(http.DefaultClient)
			if err != nil {
				embed = failEmbed("Error", fmt.Sprintf("Could not refresh the index: `%v`", err))
				break block
			}
			b.setProposals(proposals)
			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("The index now holds %d PEPs.", len(proposals)),
				Color:       accentColor,
			}
		}

	case "alias":
		switch cmd := grp.Options[0]; cmd.Name {
		case "add":
			alias := cmd.Options[0].String()
			query := cmd.Options[1].String()

			if strings.ContainsAny(alias, "[]@/") {
				embed = failEmbed("Error", "Your alias contains illegal characters.")
				break block
			}

			b.cfg.Aliases[alias] = query
			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("Searching **%s** will now point to `%s`.", alias, query),
				Color:       accentColor,
			}
		case "remove":
			alias := cmd.Options[0].String()
			delete(b.cfg.Aliases, alias)
			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("The `%s` alias has now been removed.", alias),
				Color:       accentColor,
			}
		case "list":
			embed = aliasList(b.cfg.Aliases)
		}
	}
	if !strings.HasPrefix(embed.Title, "Error") {
		err := saveConfig(b.cfg)
		if err != nil {
			embed = failEmbed("Error", fmt.Sprintf("Could not save config: `%v`", err))
		}
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Flags:  api.EphemeralResponse,
			Embeds: &[]discord.Embed{embed},
		},
	})
}

func (b *botState) canIgnore(guild discord.GuildID, user discord.Snowflake) bool {
	m, err := b.state.Member(guild, discord.UserID(user))
	if err != nil {
		return false
	}
	for _, role := range m.RoleIDs {
		if _, ok := b.cfg.Permissions.Config[guild][discord.Snowflake(role)]; ok {
			return false
		}
	}
	return true
}
