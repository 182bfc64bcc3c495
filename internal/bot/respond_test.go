package bot

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// stubTransport fakes the Discord REST API. The interaction callback endpoint
// answers with callbackStatus; everything else succeeds.
type stubTransport struct {
	callbackStatus int
	paths          []string
}

func (t *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.paths = append(t.paths, req.URL.Path)

	status := http.StatusOK
	if strings.HasSuffix(req.URL.Path, "/callback") {
		status = t.callbackStatus
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"id":"1"}`)),
	}, nil
}

func newStubSession(t *testing.T, transport *stubTransport) *discordgo.Session {
	t.Helper()
	s, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	s.Client.Transport = transport
	return s
}

func testInteraction() *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:    "interaction-id",
		AppID: "app-id",
		Token: "interaction-token",
	}}
}

func TestReplyEmbedEphemeralUnacknowledged(t *testing.T) {
	transport := &stubTransport{callbackStatus: http.StatusNoContent}
	s := newStubSession(t, transport)

	err := ReplyEmbedEphemeral(s, testInteraction(), &discordgo.MessageEmbed{Description: "boom"})
	require.NoError(t, err)

	require.Len(t, transport.paths, 1)
	require.Contains(t, transport.paths[0], "/callback")
}

func TestReplyEmbedEphemeralFallsBackToFollowup(t *testing.T) {
	// A deferred command has already consumed the initial response, so the
	// callback endpoint rejects a second one.
	transport := &stubTransport{callbackStatus: http.StatusBadRequest}
	s := newStubSession(t, transport)

	err := ReplyEmbedEphemeral(s, testInteraction(), &discordgo.MessageEmbed{Description: "boom"})
	require.NoError(t, err)

	require.Len(t, transport.paths, 2)
	require.Contains(t, transport.paths[0], "/callback")
	require.Contains(t, transport.paths[1], "/webhooks/app-id/interaction-token")
}
