package models

import (
	"fmt"
	"strings"

	"github.com/chevoisiatesalvati/guess-what/internal/units"
	"github.com/chevoisiatesalvati/guess-what/internal/words"
)

type SignInRequest struct {
	FID         int64  `json:"fid" binding:"required"`
	Token       string `json:"token" binding:"required"`
	ReferrerFID int64  `json:"referrer_fid"`
	Address     string `json:"address"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	PfpURL      string `json:"pfp_url"`
}

func (r *SignInRequest) Validate() error {
	if r.FID <= 0 {
		return fmt.Errorf("invalid fid: %d", r.FID)
	}
	if r.Address != "" {
		if _, err := ParseAddress(r.Address); err != nil {
			return err
		}
	}
	return nil
}

// SignedTxRequest carries a raw transaction signed by the player's wallet,
// hex encoded.
type SignedTxRequest struct {
	SignedTx string `json:"signed_tx" binding:"required"`
}

type CreateGameRequest struct {
	TopWord    string `json:"top_word" binding:"required"`
	MiddleWord string `json:"middle_word" binding:"required"`
	BottomWord string `json:"bottom_word" binding:"required"`
	EntryFee   string `json:"entry_fee" binding:"required"`
}

func (r *CreateGameRequest) Validate() error {
	for field, w := range map[string]string{
		"top_word":    r.TopWord,
		"middle_word": r.MiddleWord,
		"bottom_word": r.BottomWord,
	} {
		if words.Normalize(w) == "" {
			return fmt.Errorf("%s must not be blank", field)
		}
	}
	if !words.Guessable(r.MiddleWord) {
		return fmt.Errorf("middle_word must contain letters only, got %q", words.Normalize(r.MiddleWord))
	}

	fee, err := units.ParseEther(r.EntryFee)
	if err != nil {
		return err
	}
	if fee.Sign() == 0 {
		return fmt.Errorf("entry fee must be greater than zero")
	}
	return nil
}

func (r *CreateGameRequest) Trimmed() CreateGameRequest {
	return CreateGameRequest{
		TopWord:    strings.TrimSpace(r.TopWord),
		MiddleWord: r.MiddleWord,
		BottomWord: strings.TrimSpace(r.BottomWord),
		EntryFee:   strings.TrimSpace(r.EntryFee),
	}
}
