package main

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/lukpueh/peps/pep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionComponents(t *testing.T) {
	proposal := pep.Cache.Section("Proposal")
	require.NotNil(t, proposal)
	assert.NotNil(t, sectionComponents(proposal))

	examples := pep.Cache.Section("Examples")
	require.NotNil(t, examples)
	assert.Nil(t, sectionComponents(examples))
}

func TestHasPepRole(t *testing.T) {
	cfg := configuration{
		Permissions: commandPermissions{
			Pep: snowflakeLookup{1337: {}},
		},
	}

	assert.True(t, hasPepRole(cfg, []discord.RoleID{42, 1337}))
	assert.False(t, hasPepRole(cfg, []discord.RoleID{42}))
	assert.False(t, hasPepRole(cfg, nil))
}

func TestCanNavigate(t *testing.T) {
	b := &botState{
		cfg: configuration{
			Permissions: commandPermissions{
				Pep: snowflakeLookup{1337: {}},
			},
		},
	}

	// Direct messages are unrestricted.
	dm := &gateway.InteractionCreateEvent{
		InteractionEvent: discord.InteractionEvent{
			User: &discord.User{ID: 7},
		},
	}
	assert.True(t, b.canNavigate(dm))

	owner := discord.User{ID: 7}
	msg := &discord.Message{
		Interaction: &discord.MessageInteraction{
			ID:   11,
			User: owner,
		},
	}

	// The owner may always navigate their own response.
	own := &gateway.InteractionCreateEvent{
		InteractionEvent: discord.InteractionEvent{
			GuildID: 1,
			Member:  &discord.Member{User: owner},
			User:    &owner,
			Message: msg,
		},
	}
	assert.True(t, b.canNavigate(own))

	// Others need one of the configured roles.
	other := discord.User{ID: 8}
	privileged := &gateway.InteractionCreateEvent{
		InteractionEvent: discord.InteractionEvent{
			GuildID: 1,
			Member:  &discord.Member{User: other, RoleIDs: []discord.RoleID{1337}},
			User:    &other,
			Message: msg,
		},
	}
	assert.True(t, b.canNavigate(privileged))
}
