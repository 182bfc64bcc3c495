package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuildLimitExceeded(t *testing.T) {
	require.True(t, GuildLimitExceeded(4, 3))
	require.False(t, GuildLimitExceeded(3, 3))
	require.False(t, GuildLimitExceeded(0, 2))
	require.True(t, GuildLimitExceeded(3, 2))
}
