package core

import (
	"context"
	"fmt"

	"github.com/gvvenom/likespanel/internal/model"
)

// APILogService appends relay attempts to the api_logs table. Rows are never
// updated or deleted.
type APILogService struct {
	db DB
}

func NewAPILogService(db DB) *APILogService {
	return &APILogService{db: db}
}

func (s *APILogService) Insert(ctx context.Context, log *model.APILog) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO api_logs (uid, player_nickname, likes_before, likes_after, likes_given, status, response)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		log.UID, log.PlayerNickname, log.LikesBefore, log.LikesAfter,
		log.LikesGiven, log.Status, log.Response)
	if err != nil {
		return fmt.Errorf("insert api log: %w", err)
	}
	return nil
}
