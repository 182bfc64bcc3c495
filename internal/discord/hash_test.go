package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func TestHashCommandDeterministic(t *testing.T) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ask",
		Description: "Ask DinoGPT anything!",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "prompt", Description: "Your question", Required: true},
		},
	}
	require.Equal(t, hashCommand(cmd), hashCommand(cmd))
}

func TestHashCommandIgnoresRuntimeFields(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "draw", Description: "d"}
	b := &discordgo.ApplicationCommand{ID: "12345", Version: "9", ApplicationID: "777", Name: "draw", Description: "d"}
	require.Equal(t, hashCommand(a), hashCommand(b))
}

func TestHashCommandChangesWithDefinition(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "draw", Description: "old"}
	b := &discordgo.ApplicationCommand{Name: "draw", Description: "new"}
	require.NotEqual(t, hashCommand(a), hashCommand(b))
}

func TestHashCommandOptionOrderIrrelevant(t *testing.T) {
	opt1 := &discordgo.ApplicationCommandOption{Type: discordgo.ApplicationCommandOptionString, Name: "a", Description: "x"}
	opt2 := &discordgo.ApplicationCommandOption{Type: discordgo.ApplicationCommandOptionString, Name: "b", Description: "y"}

	a := &discordgo.ApplicationCommand{Name: "c", Description: "d", Options: []*discordgo.ApplicationCommandOption{opt1, opt2}}
	b := &discordgo.ApplicationCommand{Name: "c", Description: "d", Options: []*discordgo.ApplicationCommandOption{opt2, opt1}}
	require.Equal(t, hashCommand(a), hashCommand(b))
}
