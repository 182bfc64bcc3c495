package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanReplyTrimsWhitespace(t *testing.T) {
	require.Equal(t, "hello", cleanReply("  hello \n"))
}

func TestCleanReplyStripsThinkBlocks(t *testing.T) {
	in := "<think>step one\nstep two</think>The actual answer."
	require.Equal(t, "The actual answer.", cleanReply(in))
}

func TestCleanReplyUnwrapsQuotes(t *testing.T) {
	require.Equal(t, "roar", cleanReply(`"roar"`))
	require.Equal(t, "roar", cleanReply("“roar”"))
	// Mismatched quotes stay as-is.
	require.Equal(t, `"roar'`, cleanReply(`"roar'`))
}

func TestCleanReplyCapsLength(t *testing.T) {
	out := cleanReply(strings.Repeat("a", 5000))
	require.True(t, strings.HasSuffix(out, "[truncated]"))
	require.LessOrEqual(t, len(out), 2820)
}
