package main

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/httputil"
	"github.com/lukpueh/peps/index"
)

type botState struct {
	cfg   configuration
	appID discord.AppID
	state *state.State

	propMu    sync.RWMutex
	proposals []index.Proposal
}

func (b *botState) OnCommand(e *gateway.InteractionCreateEvent) {
	if e.GuildID != 0 {
		e.User = &e.Member.User
	}

	// ignore blacklisted users
	if _, ok := b.cfg.Blacklist[discord.Snowflake(e.User.ID)]; ok {
		log.Printf("Ignoring message from %s", e.User.Tag())
		return
	}

	switch data := e.Data.(type) {
	case *discord.CommandInteraction:
		switch data.Name {
		case "pep":
			b.handlePep(e, data)
		case "peps":
			b.handlePeps(e, data)
		case "grammar":
			b.handleGrammar(e, data)
		case "debate":
			b.handleDebate(e, data)
		case "info":
			b.handleInfo(e, data)
		case "config":
			b.handleConfig(e, data)
		}

	case discord.ComponentInteraction:
		split := strings.SplitN(string(data.ID()), ".", 2)
		switch split[0] {
		case "pep":
			b.handlePepComponent(e, data, split[1])
		case "debate":
			b.handleDebateComponent(e, data, split[1])
		}
	}
}

var cmdre = regexp.MustCompile(`pep\[([\w\d ?|]+)\]`)

func (b *botState) OnMessage(m *gateway.MessageCreateEvent) {
	if _, ok := b.cfg.Blacklist[discord.Snowflake(m.Author.ID)]; ok {
		return
	}

	var queries []string
	for _, v := range cmdre.FindAllStringSubmatch(m.Content, 3) {
		queries = append(queries, v[1])
	}

	b.handlePepText(m, queries)
}

func loadCommands(s *state.State, me discord.UserID, cfg configuration) error {
	appID := discord.AppID(me)

	registeredMap := map[string]bool{}
	if !update {
		registered, err := s.Commands(appID)
		if err != nil {
			return err
		}
		for _, c := range registered {
			registeredMap[c.Name] = true
			log.Println("Registered command:", c.Name)
		}
	}

	for _, c := range commands {
		if registeredMap[c.Name] {
			continue
		}
		if _, err := s.CreateCommand(appID, c); err != nil {
			var httperr *httputil.HTTPError
			if errors.As(err, &httperr) {
				log.Println(string(httperr.Body))
			}
			return fmt.Errorf("could not register: %s, %w", c.Name, err)
		}
		log.Println("Created command:", c.Name)
	}

	return nil
}

var commands = []api.CreateCommandData{
	{
		Name:        "pep",
		Description: "Search the union syntax proposal (PEP 604)",
		Options: []discord.CommandOption{
			&discord.StringOption{
				OptionName:  "query",
				Description: "Section title or keywords",
				Required:    true,
			},
		},
	},
	{
		Name:        "peps",
		Description: "Search the PEP index",
		Options: []discord.CommandOption{
			&discord.StringOption{
				OptionName:  "query",
				Description: "PEP number, title or author",
				Required:    true,
			},
			&discord.BooleanOption{
				OptionName:  "authors",
				Description: "Also match on the author list",
			},
		},
	},
	{
		Name:        "grammar",
		Description: "Show the proposed annotation grammar",
	},
	{
		Name:        "debate",
		Description: "Browse the dissenting opinion",
		Options: []discord.CommandOption{
			&discord.StringOption{
				OptionName:  "alternative",
				Description: "Alternative proposal to show",
			},
		},
	},
	{
		Name:        "info",
		Description: "Generic Bot Info",
	},
	{
		Name:                "config",
		Description:         "Configure the bot",
		NoDefaultPermission: true,
		Options: []discord.CommandOption{
			&discord.SubcommandGroupOption{
				OptionName:  "user",
				Description: "Manage user access to the bot",
				Subcommands: []*discord.SubcommandOption{
					{
						OptionName:  "ignore",
						Description: "Ignore commands and actions from a user",
						Options: []discord.CommandOptionValue{
							&discord.UserOption{
								OptionName:  "user",
								Description: "User to ignore",
								Required:    true,
							},
						},
					},
					{
						OptionName:  "unignore",
						Description: "Stop ignoring commands and actions from a user",
						Options: []discord.CommandOptionValue{
							&discord.UserOption{
								OptionName:  "user",
								Description: "User to unignore",
								Required:    true,
							},
						},
					},
					{
						OptionName:  "ignorelist",
						Description: "List all ignored users",
					},
				},
			},
			&discord.SubcommandGroupOption{
				OptionName:  "index",
				Description: "Manage the PEP index",
				Subcommands: []*discord.SubcommandOption{
					{
						OptionName:  "refresh",
						Description: "Refetch the PEP index now",
					},
				},
			},
			&discord.SubcommandGroupOption{
				OptionName:  "alias",
				Description: "Configure /pep aliases",
				Subcommands: []*discord.SubcommandOption{
					{
						OptionName:  "add",
						Description: "Add an alias",
						Options: []discord.CommandOptionValue{
							&discord.StringOption{
								OptionName:  "alias",
								Description: "Alias name",
								Required:    true,
							},
							&discord.StringOption{
								OptionName:  "query",
								Description: "Full section query",
								Required:    true,
							},
						},
					},
					{
						OptionName:  "remove",
						Description: "Remove an alias",
						Options: []discord.CommandOptionValue{
							&discord.StringOption{
								OptionName:  "alias",
								Description: "Alias name",
								Required:    true,
							},
						},
					},
					{
						OptionName:  "list",
						Description: "List all aliases",
					},
				},
			},
		},
	},
}
