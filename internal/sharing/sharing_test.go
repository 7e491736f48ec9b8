package sharing_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chevoisiatesalvati/guess-what/internal/sharing"
)

func TestGameWinLinks(t *testing.T) {
	b := sharing.New("https://guesswhat.example/")
	links := b.Links(sharing.Data{
		Kind:   sharing.KindGameWin,
		GameID: "7",
		Prize:  "0.0015",
		Player: "0x1234567890123456789012345678901234567890",
	})

	assert.Contains(t, links.Text, "I just won 0.0015 ETH")
	assert.Contains(t, links.Text, "https://guesswhat.example")
	assert.Equal(t, "https://guesswhat.example/game?win=7&prize=0.0015", links.URL)

	og, err := url.Parse(links.OGImageURL)
	require.NoError(t, err)
	assert.Equal(t, "/api/og/game-win", og.Path)
	assert.Equal(t, "7", og.Query().Get("gameId"))
	assert.Equal(t, "0x1234567890123456789012345678901234567890", og.Query().Get("player"))

	compose, err := url.Parse(links.ComposeURL)
	require.NoError(t, err)
	assert.Equal(t, "warpcast.com", compose.Host)
	assert.Equal(t, links.Text, compose.Query().Get("text"))
	assert.Equal(t, links.URL, compose.Query().Get("embeds[]"))
}

func TestTextPerKind(t *testing.T) {
	b := sharing.New("https://guesswhat.example")

	tests := []struct {
		name string
		data sharing.Data
		want string
	}{
		{"achievement", sharing.Data{Kind: sharing.KindAchievement, Achievement: "Sharp", Accuracy: 75.55}, `Unlocked "Sharp"`},
		{"leaderboard", sharing.Data{Kind: sharing.KindLeaderboard, Position: 3, GamesPlayed: 12, Accuracy: 50}, "I'm #3 on the Guess What? leaderboard! 12 games, 50.0% win rate"},
		{"challenge", sharing.Data{Kind: sharing.KindChallenge}, "Think you're smart?"},
		{"default", sharing.Data{}, "the word game for smart people"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, b.Text(tt.data), tt.want)
		})
	}

	assert.Equal(t, "https://guesswhat.example/images/feed.png", b.OGImageURL(sharing.Data{Kind: sharing.KindChallenge}))
	assert.Equal(t, "https://guesswhat.example/leaderboard?position=3", b.URL(sharing.Data{Kind: sharing.KindLeaderboard, Position: 3}))
}

func TestManifestName(t *testing.T) {
	prod := sharing.New("https://guesswhat.example").Manifest(sharing.AccountAssociation{Header: "h"})
	assert.Equal(t, "Guess What?", prod.Frame.Name)
	assert.False(t, prod.Frame.NoIndex)
	assert.Equal(t, "h", prod.AccountAssociation.Header)
	assert.Equal(t, "https://guesswhat.example/images/icon.png", prod.Frame.IconURL)

	local := sharing.New("http://localhost:3000").Manifest(sharing.AccountAssociation{})
	assert.Equal(t, "Guess What? Local", local.Frame.Name)
	assert.True(t, local.Frame.NoIndex)

	dev := sharing.New("https://dev.guesswhat.example").Manifest(sharing.AccountAssociation{})
	assert.Equal(t, "Guess What? Dev", dev.Frame.Name)
}
