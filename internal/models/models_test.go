package models_test

import (
	"math/big"
	"regexp"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/words"
)

func TestNewGame(t *testing.T) {
	winner := common.HexToAddress("0x00000000000000000000000000000000000000cc")
	game := models.NewGame(&contract.GameInfo{
		GameID:           12,
		TopWord:          "Coca",
		MiddleWordLength: 4,
		BottomWord:       "Pepsi",
		EntryFee:         big.NewInt(100_000_000_000_000),
		TotalPrize:       big.NewInt(1_500_000_000_000_000),
		BasePrizeAmount:  big.NewInt(1_000_000_000_000_000),
		IsCompleted:      true,
		Winner:           winner,
	})

	assert.Equal(t, "12", game.ID)
	assert.Equal(t, models.GameSourceChain, game.Source)
	assert.Equal(t, "_ _ _ _", game.MaskedWord)
	assert.Equal(t, "0.0001", game.EntryFee)
	assert.Equal(t, "0.0015", game.TotalPrize)
	assert.Equal(t, winner.Hex(), game.Winner)

	assert.Nil(t, models.NewGame(nil))
}

func TestLocalGameStateTimer(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	state := &models.LocalGameState{
		ID:         models.GenerateLocalGameID(start),
		Words:      words.Triple{Top: "cat", Middle: "elephant", Bottom: "dog"},
		Hint:       words.Hint("elephant"),
		StartedAt:  start,
		TimeLimit:  30 * time.Second,
		EntryFee:   big.NewInt(1_000_000_000_000_000),
		TotalPrize: big.NewInt(1_000_000_000_000_000),
		IsActive:   true,
	}

	assert.Regexp(t, regexp.MustCompile(`^game_1700000000000_[0-9a-f]{9}$`), state.ID)
	assert.Equal(t, 10*time.Second, state.TimeRemaining(start.Add(20*time.Second)))
	assert.False(t, state.Expired(start.Add(29*time.Second)))
	assert.True(t, state.Expired(start.Add(31*time.Second)))

	view := state.View()
	assert.Equal(t, models.GameSourceLocal, view.Source)
	assert.Equal(t, 8, view.MiddleWordLength)
	assert.Equal(t, "e••••••t", view.Hint)
	assert.Equal(t, "0.001", view.TotalPrize)
	require.NotNil(t, view.Deadline)
}

func TestCreateGameRequestValidate(t *testing.T) {
	valid := &models.CreateGameRequest{TopWord: "Cat", MiddleWord: "Animal", BottomWord: "Dog", EntryFee: "0.0001"}
	assert.NoError(t, valid.Validate())

	blank := &models.CreateGameRequest{TopWord: "Cat", MiddleWord: "   ", BottomWord: "Dog", EntryFee: "0.0001"}
	assert.Error(t, blank.Validate())

	free := &models.CreateGameRequest{TopWord: "Cat", MiddleWord: "Animal", BottomWord: "Dog", EntryFee: "0"}
	assert.Error(t, free.Validate())

	bad := &models.CreateGameRequest{TopWord: "Cat", MiddleWord: "Animal", BottomWord: "Dog", EntryFee: "lots"}
	assert.Error(t, bad.Validate())

	// the view only accepts letters, so anything else could never be guessed
	for _, middle := range []string{"ice cream", "web3", "t-shirt"} {
		req := &models.CreateGameRequest{TopWord: "Cat", MiddleWord: middle, BottomWord: "Dog", EntryFee: "0.0001"}
		assert.ErrorContains(t, req.Validate(), "letters only", middle)
	}
}

func TestSignInRequestValidate(t *testing.T) {
	assert.NoError(t, (&models.SignInRequest{FID: 1, Token: "t"}).Validate())
	assert.Error(t, (&models.SignInRequest{FID: 0, Token: "t"}).Validate())
	assert.Error(t, (&models.SignInRequest{FID: 1, Token: "t", Address: "nope"}).Validate())
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x1234...7890", models.ShortAddress("0x1234567890123456789012345678901234567890"))
	assert.Equal(t, "alice", models.ShortAddress("alice"))
}

func TestNewPlayerStats(t *testing.T) {
	stats := models.NewPlayerStats("0xabc", &contract.PlayerStats{
		GamesPlayed:         4,
		CorrectGuesses:      1,
		TotalWinnings:       big.NewInt(2_000_000_000_000_000),
		AccuracyBasisPoints: 2500,
	}, time.Time{})

	assert.Equal(t, "0.002", stats.TotalWinnings)
	assert.InDelta(t, 25.0, stats.Accuracy, 0.0001)

	empty := models.NewPlayerStats("0xabc", nil, time.Time{})
	assert.Equal(t, "0", empty.TotalWinnings)
}
