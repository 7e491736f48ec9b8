package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateLocalGameID returns ids shaped like game_<unix ms>_<9 chars>.
func GenerateLocalGameID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("game_%d_%s", now.UnixMilli(), suffix)
}

func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address: %q", s)
	}
	return common.HexToAddress(s), nil
}

// ShortAddress renders 0x1234...abcd. Anything that is not an address is
// returned unchanged.
func ShortAddress(s string) string {
	if !common.IsHexAddress(s) {
		return s
	}
	hex := common.HexToAddress(s).Hex()
	return hex[:6] + "..." + hex[len(hex)-4:]
}
