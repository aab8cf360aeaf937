package main

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pkg/errors"
)

const configPath = "config.json"

type configuration struct {
	Token       string             `json:"token,omitempty"`
	Permissions commandPermissions `json:"permissions"`
	Aliases     map[string]string  `json:"aliases"`
	Blacklist   snowflakeLookup    `json:"blacklist"`
}

type commandPermissions struct {
	// Pep lists the roles allowed to navigate another user's
	// section or debate view in place.
	Pep snowflakeLookup `json:"pep"`
	// Config lists, per guild, the roles exempt from being ignored.
	Config map[discord.GuildID]snowflakeLookup `json:"config"`
}

// snowflakeLookup is a set of snowflakes, stored in JSON as a sorted
// array.
type snowflakeLookup map[discord.Snowflake]struct{}

func (l snowflakeLookup) MarshalJSON() ([]byte, error) {
	flakes := make([]discord.Snowflake, 0, len(l))
	for s := range l {
		flakes = append(flakes, s)
	}
	sort.Slice(flakes, func(i, j int) bool { return flakes[i] < flakes[j] })
	return json.Marshal(flakes)
}

func (l *snowflakeLookup) UnmarshalJSON(b []byte) error {
	var flakes []discord.Snowflake
	if err := json.Unmarshal(b, &flakes); err != nil {
		return err
	}
	if *l == nil {
		*l = make(snowflakeLookup, len(flakes))
	}
	for _, s := range flakes {
		(*l)[s] = struct{}{}
	}
	return nil
}

func configFromBytes(b []byte) (configuration, error) {
	config := configuration{
		Permissions: commandPermissions{
			Pep:    make(snowflakeLookup),
			Config: make(map[discord.GuildID]snowflakeLookup),
		},
		Aliases:   map[string]string{},
		Blacklist: make(snowflakeLookup),
	}
	if err := json.Unmarshal(b, &config); err != nil {
		return configuration{}, err
	}
	return config, nil
}

func config() configuration {
	fileBytes, err := os.ReadFile(configPath)
	if err != nil {
		panic(errors.Wrap(err, "could not open config"))
	}
	config, err := configFromBytes(fileBytes)
	if err != nil {
		panic(errors.Wrap(err, "could not parse config"))
	}
	return config
}

func saveConfig(cfg configuration) error {
	b, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return errors.Wrap(err, "could not encode config")
	}
	if err := os.WriteFile(configPath, b, 0o644); err != nil {
		return errors.Wrap(err, "could not write config")
	}
	return nil
}
