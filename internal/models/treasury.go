package models

// AdminSet is the contract's owner and admin list.
type AdminSet struct {
	Owner  string   `json:"owner"`
	Admins []string `json:"admins"`
	Count  uint64   `json:"count"`
}

// AdminAccess is what the connected address may do. It only decides which
// controls are offered; the contract performs the real check.
type AdminAccess struct {
	Address string `json:"address"`
	IsOwner bool   `json:"is_owner"`
	IsAdmin bool   `json:"is_admin"`

	CanCreateGames   bool `json:"can_create_games"`
	CanFundTreasury  bool `json:"can_fund_treasury"`
	CanSetParameters bool `json:"can_set_parameters"`
	CanManageAdmins  bool `json:"can_manage_admins"`
}

// AdminControl is one button of the admin pages.
type AdminControl struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Controls lists every admin mutation and whether it is offered.
func (a *AdminAccess) Controls() []AdminControl {
	return []AdminControl{
		{"create_game", a.CanCreateGames},
		{"fund_treasury", a.CanFundTreasury},
		{"withdraw_treasury", a.CanFundTreasury},
		{"set_prize_multiplier", a.CanSetParameters},
		{"set_platform_fee", a.CanSetParameters},
		{"add_admin", a.CanManageAdmins},
		{"remove_admin", a.CanManageAdmins},
	}
}

type TreasuryOverview struct {
	Balance            string `json:"balance"`
	PrizeMultiplier    uint64 `json:"prize_multiplier"`
	PlatformFeePercent uint64 `json:"platform_fee_percent"`
}
