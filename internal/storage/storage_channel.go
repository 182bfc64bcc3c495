package storage

// SetChatChannel restricts chat commands in a guild to one channel.
// An empty channelID lifts the restriction.
func (s *Storage) SetChatChannel(guildID, channelID string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.ChatChannelID = channelID
	return s.ds.Set(guildID, record)
}

func (s *Storage) GetChatChannel(guildID string) (string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return "", err
	}
	return record.ChatChannelID, nil
}
