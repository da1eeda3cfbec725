package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gvvenom/likespanel/internal/model"
)

// AdminService owns the admin_credentials table, which holds at most one row.
type AdminService struct {
	db DB
}

func NewAdminService(db DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) Get(ctx context.Context) (*model.AdminCredential, error) {
	var a model.AdminCredential
	err := s.db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at, updated_at
		 FROM admin_credentials LIMIT 1`,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get admin credential: %w", err)
	}
	return &a, nil
}

// EnsureInitialized inserts the credential row if none exists. The unique
// index on username makes concurrent first calls converge on a single row;
// a losing writer's insert is a no-op, not an error.
func (s *AdminService) EnsureInitialized(ctx context.Context, username, passwordHash string) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO admin_credentials (username, password_hash)
		 VALUES ($1, $2)
		 ON CONFLICT (username) DO NOTHING`,
		username, passwordHash)
	if err != nil {
		return fmt.Errorf("initialize admin credential: %w", err)
	}
	return nil
}
