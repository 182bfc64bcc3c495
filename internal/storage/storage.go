// Package storage persists per-guild settings in a JSON-backed datastore.
// Runtime chat state never lands here; see the session package for that.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit int = 20

type Storage struct {
	ds *datastore.DataStore
}

type CommandHistoryRecord struct {
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	GuildName   string    `json:"guild_name"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Command     string    `json:"command"`
	Param       string    `json:"param"`
	Datetime    time.Time `json:"datetime"`
}

type Record struct {
	CommandsHistoryList []CommandHistoryRecord `json:"cmd_history"`
	ChatChannelID       string                 `json:"chat_channel_id"`
	CommandHashes       map[string]string      `json:"command_hashes"` // command name -> definition hash
}

// New opens the datastore at filePath. The context bounds the store's
// background autosave; cancel it on shutdown.
func New(ctx context.Context, filePath string) (*Storage, error) {
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	var record Record
	found, err := s.ds.Get(guildID, &record)
	if err != nil {
		return nil, fmt.Errorf("error loading guild record: %w", err)
	}
	if !found {
		record = Record{
			CommandsHistoryList: []CommandHistoryRecord{},
			CommandHashes:       map[string]string{},
		}
		if err := s.ds.Set(guildID, &record); err != nil {
			return nil, fmt.Errorf("error creating guild record: %w", err)
		}
		return &record, nil
	}

	if record.CommandHashes == nil {
		record.CommandHashes = map[string]string{}
	}
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}

	return &record, nil
}
