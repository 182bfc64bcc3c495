// Package middleware wraps commands with cross-cutting checks. Wrappers
// preserve the slash definition and component handler of the command they
// wrap, so a decorated command registers and dispatches like a bare one.
package middleware

import (
	"github.com/bwmarrin/discordgo"

	"github.com/keshon/dinogpt/internal/command"
)

type Middleware func(command.Command) command.Command

// Apply decorates cmd with the given middlewares, outermost first.
func Apply(cmd command.Command, mws ...Middleware) command.Command {
	for i := len(mws) - 1; i >= 0; i-- {
		cmd = mws[i](cmd)
	}
	return cmd
}

type wrappedCommand struct {
	command.Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	return w.wrap(ctx)
}

// SlashDefinition forwards to the wrapped command when it has one.
func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if p, ok := w.Command.(command.SlashProvider); ok {
		return p.SlashDefinition()
	}
	return nil
}

// Component forwards to the wrapped command when it handles components.
func (w *wrappedCommand) Component(ctx *command.ComponentContext) error {
	if h, ok := w.Command.(command.ComponentHandler); ok {
		return h.Component(ctx)
	}
	return nil
}
