package model

import "time"

// APILog records one relay attempt against the external likes API.
// Rows are append-only.
type APILog struct {
	ID             int64     `json:"id"`
	UID            string    `json:"uid"`
	PlayerNickname string    `json:"player_nickname"`
	LikesBefore    int       `json:"likes_before"`
	LikesAfter     int       `json:"likes_after"`
	LikesGiven     int       `json:"likes_given"`
	Status         int       `json:"status"`
	Response       string    `json:"response"`
	CreatedAt      time.Time `json:"created_at"`
}
