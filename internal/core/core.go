package core

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB defines the database operations used by services.
// *pgxpool.Pool satisfies this interface.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; callers must not distinguish the two externally.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSubscriptionExpired rejects a VIP login whose account is past its
	// expiry date. The record itself persists.
	ErrSubscriptionExpired = errors.New("subscription expired")

	// ErrConflict signals a duplicate username on account creation.
	ErrConflict = errors.New("username already exists")

	// ErrNotFound signals a missing row on lookup.
	ErrNotFound = errors.New("not found")
)
