package main

import (
	"context"
	"flag"
	"log"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
)

var update bool

func main() {
	updateVar := flag.Bool("update", false, "update all commands, regardless of if they are present or not")
	flag.Parse()
	update = *updateVar

	cfg := config()
	if cfg.Token == "" {
		log.Fatal("no token provided")
	}

	s := state.New("Bot " + cfg.Token)

	b := botState{
		cfg:   cfg,
		state: s,
	}

	s.AddHandler(b.OnCommand)
	s.AddHandler(b.OnMessage)
	s.AddIntents(gateway.IntentGuilds | gateway.IntentGuildMessages)

	if err := s.Open(context.Background()); err != nil {
		log.Fatalln("failed to open:", err)
	}
	defer s.Close()

	log.Println("Gateway connection established.")
	me, err := s.Me()
	if err != nil {
		log.Println("Could not get me:", err)
		return
	}
	b.appID = discord.AppID(me.ID)

	log.Println("Logged in as ", me.Tag())

	if err := loadCommands(s, me.ID, cfg); err != nil {
		log.Println("Could not load commands:", err)
		return
	}

	go b.updateProposals()
	go b.gcInteractionData()
	select {}
}
