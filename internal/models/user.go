package models

import "time"

// User is a Farcaster account signed in through quick auth.
type User struct {
	FID         int64  `json:"fid" redis:"fid"`
	Username    string `json:"username,omitempty" redis:"username"`
	DisplayName string `json:"display_name,omitempty" redis:"display_name"`
	PfpURL      string `json:"pfp_url,omitempty" redis:"pfp_url"`
	Address     string `json:"address,omitempty" redis:"address"`
	ReferrerFID int64  `json:"referrer_fid,omitempty" redis:"referrer_fid"`

	CreatedAt int64 `json:"created_at" redis:"created_at"`
	UpdatedAt int64 `json:"updated_at" redis:"updated_at"`
}

type UserSession struct {
	ID           int64     `json:"id"`
	SessionID    string    `json:"session_id"`
	User         User      `json:"user"`
	CreatedAt    time.Time `json:"created_at"`
	LastAccessed time.Time `json:"last_accessed"`
}
