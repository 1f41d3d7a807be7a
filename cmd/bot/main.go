// bot is a Discord front end: the /greeklish slash command translates
// the given text in-channel.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/fsantini/lishgreek/internal/dict/stores"
	"github.com/fsantini/lishgreek/internal/logger"
	"github.com/fsantini/lishgreek/internal/translit"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "greeklish",
		Description: "Translate Greeklish text to Greek",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "The Greeklish text to translate",
				Required:    true,
			},
		},
	},
}

type Bot struct {
	translator *translit.Translator
	log        *slog.Logger
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name != "greeklish" {
		return
	}

	var text string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "text" {
			text = opt.StringValue()
		}
	}
	if text == "" {
		b.respond(s, i, "Nothing to translate.")
		return
	}
	b.respond(s, i, b.translator.Translate(text))
}

func (b *Bot) respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		b.log.Error("failed to respond to interaction", "error", err)
	}
}

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("lishgreek-bot")
	var (
		token    = fs.StringLong("discord-token", "", "Discord bot token")
		dictPath = fs.StringLong("dict", "uglish-dict.json.gz", "Canonical index artifact (gzip JSON, sqlite:// path, or postgres:// URL)")
		guildID  = fs.StringLong("guild-id", "", "Register commands to this guild only (instant updates)")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("LISHGREEK")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *token == "" {
		return fmt.Errorf("discord-token is required")
	}

	log := logger.New()
	ctx := context.Background()

	store, cleanup, err := stores.Open(ctx, *dictPath)
	if err != nil {
		return fmt.Errorf("opening index store: %w", err)
	}
	defer cleanup()

	index, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading canonical index: %w", err)
	}
	log.Info("loaded canonical index", "keys", index.Keys(), "words", index.Words())

	bot := &Bot{translator: translit.New(index), log: log}

	dg, err := discordgo.New("Bot " + *token)
	if err != nil {
		return fmt.Errorf("creating Discord session: %w", err)
	}

	dg.AddHandler(bot.handleInteraction)
	dg.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.Info("connected to Discord", "username", r.User.Username)
	})

	if err := dg.Open(); err != nil {
		return fmt.Errorf("opening Discord connection: %w", err)
	}
	defer dg.Close()

	for _, cmd := range commands {
		if _, err := dg.ApplicationCommandCreate(dg.State.User.ID, *guildID, cmd); err != nil {
			log.Error("failed to register command", "command", cmd.Name, "error", err)
		} else {
			log.Info("registered command", "command", cmd.Name)
		}
	}

	log.Info("bot is running, press Ctrl+C to stop")
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down")
	return nil
}
