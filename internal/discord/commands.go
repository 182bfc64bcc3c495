package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/keshon/dinogpt/internal/command"
)

// registerCommands syncs slash commands for a guild with Discord: deletes
// obsolete ones and creates or updates commands whose definition hash
// differs from the stored value, so an unchanged boot makes no API writes.
func (b *Bot) registerCommands(guildID string) error {
	appID, err := b.appID()
	if err != nil {
		return err
	}

	remote, _ := b.dg.ApplicationCommands(appID, guildID)
	remoteByName := make(map[string]*discordgo.ApplicationCommand, len(remote))
	for _, c := range remote {
		remoteByName[c.Name] = c
	}

	local := buildCommandDefinitions()

	b.deleteObsoleteCommands(appID, guildID, remoteByName, local)
	b.upsertChangedCommands(appID, guildID, local)

	return nil
}

func (b *Bot) appID() (string, error) {
	if b.dg.State.User != nil && b.dg.State.User.ID != "" {
		return b.dg.State.User.ID, nil
	}
	user, err := b.dg.User("@me")
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func buildCommandDefinitions() []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, c := range command.All() {
		if p, ok := c.(command.SlashProvider); ok {
			if def := p.SlashDefinition(); def != nil {
				defs = append(defs, def)
			}
		}
	}
	return defs
}

// deleteObsoleteCommands removes remote commands that no longer exist locally.
func (b *Bot) deleteObsoleteCommands(appID, guildID string, remote map[string]*discordgo.ApplicationCommand, local []*discordgo.ApplicationCommand) {
	localNames := make(map[string]struct{}, len(local))
	for _, d := range local {
		localNames[d.Name] = struct{}{}
	}

	hashes := b.loadCommandHashes(guildID)
	dirty := false
	for name, rc := range remote {
		if _, exists := localNames[name]; exists {
			continue
		}
		log.Info().Str("guild", guildID).Str("command", name).Msg("[BOT] Deleting obsolete command")
		if err := b.dg.ApplicationCommandDelete(appID, guildID, rc.ID); err != nil {
			log.Error().Err(err).Str("guild", guildID).Str("command", name).Msg("[BOT] Failed to delete command")
		} else {
			delete(hashes, name)
			dirty = true
		}
	}
	if dirty {
		b.saveCommandHashes(guildID, hashes)
	}
}

// upsertChangedCommands registers commands whose hash differs from the cache.
func (b *Bot) upsertChangedCommands(appID, guildID string, defs []*discordgo.ApplicationCommand) {
	cached := b.loadCommandHashes(guildID)

	var changed []*discordgo.ApplicationCommand
	newHashes := make(map[string]string, len(defs))
	for _, d := range defs {
		h := hashCommand(d)
		newHashes[d.Name] = h
		if cached[d.Name] != h {
			changed = append(changed, d)
		}
	}
	if len(changed) == 0 {
		return
	}

	log.Info().Str("guild", guildID).Int("count", len(changed)).Msg("[BOT] Registering changed command(s)")
	for _, d := range changed {
		if _, err := b.dg.ApplicationCommandCreate(appID, guildID, d); err != nil {
			log.Error().Err(err).Str("guild", guildID).Str("command", d.Name).Msg("[BOT] Failed to register command")
			delete(newHashes, d.Name)
		} else {
			log.Info().Str("guild", guildID).Str("command", d.Name).Msg("[BOT] Registered command")
		}
		time.Sleep(25 * time.Millisecond) // stay well under Discord's rate limit
	}

	for k, v := range newHashes {
		cached[k] = v
	}
	b.saveCommandHashes(guildID, cached)
}

func (b *Bot) loadCommandHashes(guildID string) map[string]string {
	hashes, err := b.storage.GetCommandHashes(guildID)
	if err != nil {
		log.Warn().Err(err).Str("guild", guildID).Msg("[BOT] Failed to load command hashes")
		return map[string]string{}
	}
	return hashes
}

func (b *Bot) saveCommandHashes(guildID string, hashes map[string]string) {
	if err := b.storage.SetCommandHashes(guildID, hashes); err != nil {
		log.Warn().Err(err).Str("guild", guildID).Msg("[BOT] Failed to save command hashes")
	}
}
