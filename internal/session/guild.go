package session

// GuildLimitExceeded reports whether the bot is a member of more guilds than
// allowed. Leaving the newest guild and notifying the operator are messaging
// side effects that belong to the Discord layer, not here.
func GuildLimitExceeded(current, max int) bool {
	return current > max
}
