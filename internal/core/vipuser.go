package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gvvenom/likespanel/internal/model"
)

// VipUserService owns the vip_users table. Usernames are unique and immutable
// after creation; expiry blocks login but never deletes the row.
type VipUserService struct {
	db DB
}

func NewVipUserService(db DB) *VipUserService {
	return &VipUserService{db: db}
}

func (s *VipUserService) GetByUsername(ctx context.Context, username string) (*model.VipUser, error) {
	var u model.VipUser
	err := s.db.QueryRow(ctx,
		`SELECT id, username, password_hash, expiry_date, created_at, updated_at
		 FROM vip_users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.ExpiryDate, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get vip user %s: %w", username, err)
	}
	return &u, nil
}

func (s *VipUserService) Create(ctx context.Context, username, passwordHash string, expiry time.Time) (*model.VipUser, error) {
	u := model.VipUser{
		Username:     username,
		PasswordHash: passwordHash,
		ExpiryDate:   expiry,
	}
	err := s.db.QueryRow(ctx,
		`INSERT INTO vip_users (username, password_hash, expiry_date)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		username, passwordHash, expiry,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("create vip user %s: %w", username, err)
	}
	return &u, nil
}

// List returns every account in insertion order, without password hashes.
func (s *VipUserService) List(ctx context.Context) ([]model.VipUserSummary, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, username, expiry_date, created_at
		 FROM vip_users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list vip users: %w", err)
	}
	defer rows.Close()

	var users []model.VipUserSummary
	for rows.Next() {
		var u model.VipUserSummary
		if err := rows.Scan(&u.ID, &u.Username, &u.ExpiryDate, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vip user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Delete removes an account by id. Deleting a non-existent id is not an error.
func (s *VipUserService) Delete(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM vip_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vip user %d: %w", id, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
