package sharing

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type Kind string

const (
	KindGameWin     Kind = "game_win"
	KindAchievement Kind = "achievement"
	KindLeaderboard Kind = "leaderboard"
	KindChallenge   Kind = "challenge"
)

const composeURL = "https://warpcast.com/~/compose"

// Data describes one shareable moment. Only the fields relevant to Kind are
// read.
type Data struct {
	Kind        Kind
	GameID      string
	Prize       string
	Player      string
	Accuracy    float64
	GamesPlayed uint64
	Position    int
	Achievement string
}

// Links is everything a client needs to share a moment.
type Links struct {
	Text       string `json:"text"`
	URL        string `json:"url"`
	OGImageURL string `json:"og_image_url"`
	ComposeURL string `json:"compose_url"`
}

type Builder struct {
	appURL string
}

func New(appURL string) *Builder {
	return &Builder{appURL: strings.TrimRight(appURL, "/")}
}

func (b *Builder) AppURL() string {
	return b.appURL
}

func (b *Builder) Text(d Data) string {
	switch d.Kind {
	case KindGameWin:
		return fmt.Sprintf("🎉 Guess What?! I just won %s ETH in this game! Craaazy! Play with me here: %s", d.Prize, b.appURL)
	case KindAchievement:
		return fmt.Sprintf("🏆 Unlocked %q in Guess What?! My accuracy: %.1f%%. Challenge me: %s", d.Achievement, d.Accuracy, b.appURL)
	case KindLeaderboard:
		return fmt.Sprintf("📈 I'm #%d on the Guess What? leaderboard! %d games, %.1f%% win rate. Can you beat me? %s",
			d.Position, d.GamesPlayed, d.Accuracy, b.appURL)
	case KindChallenge:
		return fmt.Sprintf("🧠 Think you're smart? Try to guess the word connecting these two words in Guess What?! %s", b.appURL)
	default:
		return fmt.Sprintf("🧠 Playing Guess What? - the word game for smart people! Can you guess the connecting word? %s", b.appURL)
	}
}

func (b *Builder) URL(d Data) string {
	switch d.Kind {
	case KindGameWin:
		return b.appURL + "/game?" + encode("win", d.GameID, "prize", d.Prize)
	case KindAchievement:
		return b.appURL + "/achievement?" + encode("badge", d.Achievement)
	case KindLeaderboard:
		return b.appURL + "/leaderboard?" + encode("position", strconv.Itoa(d.Position))
	case KindChallenge:
		return b.appURL + "/game?challenge=true"
	default:
		return b.appURL
	}
}

// OGImageURL points at the preview image for d. Kinds without a rendered
// card fall back to the static feed image.
func (b *Builder) OGImageURL(d Data) string {
	switch d.Kind {
	case KindGameWin:
		return b.appURL + "/api/og/game-win?" + encode("gameId", d.GameID, "prize", d.Prize, "player", d.Player)
	default:
		return b.appURL + "/images/feed.png"
	}
}

func (b *Builder) ComposeURL(d Data) string {
	return composeURL + "?" + encode("text", b.Text(d), "embeds[]", b.URL(d))
}

func (b *Builder) Links(d Data) Links {
	return Links{
		Text:       b.Text(d),
		URL:        b.URL(d),
		OGImageURL: b.OGImageURL(d),
		ComposeURL: b.ComposeURL(d),
	}
}

// encode keeps parameter order, which url.Values.Encode does not.
func encode(kv ...string) string {
	parts := make([]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		parts = append(parts, url.QueryEscape(kv[i])+"="+url.QueryEscape(kv[i+1]))
	}
	return strings.Join(parts, "&")
}
