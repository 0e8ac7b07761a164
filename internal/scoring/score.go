package scoring

import "errors"

var ErrUserNotFound = errors.New("user not found")

// RankingEntry is one leaderboard row. Position is 1-based and assigned
// at query time, users without points rank with 0.
type RankingEntry struct {
	Position          int     `json:"position"`
	UserID            int     `json:"userId"`
	UserName          string  `json:"userName"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
	Points            int     `json:"points"`
}
