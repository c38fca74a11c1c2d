package models

import "time"

// BlockedPlatform narrows a date block to one token platform, or all of them.
type BlockedPlatform string

const (
	BlockAllPlatforms BlockedPlatform = "all"
	BlockChaturbate   BlockedPlatform = "chaturbate"
	BlockStripchat    BlockedPlatform = "stripchat"
)

// ValidBlockedPlatform reports whether the given string is a known platform.
func ValidBlockedPlatform(p string) bool {
	switch BlockedPlatform(p) {
	case BlockAllPlatforms, BlockChaturbate, BlockStripchat:
		return true
	}
	return false
}

// BlockedDate is one date on which directors have closed token entry,
// for one platform or for all of them. At most one row per (date, platform).
type BlockedDate struct {
	ID        int             `json:"id" gorm:"primaryKey"`
	Date      time.Time       `json:"-" gorm:"not null;type:date;uniqueIndex:idx_blocked_date_platform"`
	Platform  BlockedPlatform `json:"platform" gorm:"default:all;uniqueIndex:idx_blocked_date_platform"`
	Reason    string          `json:"reason"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

// DateString returns the blocked date in the wire format used by the API.
func (b *BlockedDate) DateString() string {
	return b.Date.Format("2006-01-02")
}
