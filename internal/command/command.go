// Package command defines the command abstraction and the process-wide
// registry. Concrete commands live in subpackages and self-register from
// init, so wiring a new command is a blank import in main.
package command

import (
	"github.com/bwmarrin/discordgo"

	"github.com/keshon/dinogpt/internal/ai"
	"github.com/keshon/dinogpt/internal/config"
	"github.com/keshon/dinogpt/internal/session"
	"github.com/keshon/dinogpt/internal/storage"
)

type Command interface {
	Name() string
	Description() string
	Category() string
	Run(ctx interface{}) error
}

// SlashProvider is implemented by commands that register a slash definition
// with Discord.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// ComponentHandler is implemented by commands that own message components
// (buttons, select menus). Custom IDs are prefixed "<command name>:".
type ComponentHandler interface {
	Component(ctx *ComponentContext) error
}

type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Config  *config.Config
	Storage *storage.Storage
	State   *session.Manager
	AI      ai.Provider
}

type ComponentContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Config  *config.Config
	Storage *storage.Storage
	State   *session.Manager
	AI      ai.Provider
}
