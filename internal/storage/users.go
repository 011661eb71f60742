package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
)

// "desc" is a reserved word in PostgreSQL, so the column stays quoted
// everywhere it appears.
const userColumns = `uid, name, pwd, email, nick, "desc", sex, icon`

// GetUserByUID loads one profile by uid.
func (s *Store) GetUserByUID(ctx context.Context, uid int64) (*domain.BaseInfo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE uid = $1`, uid)
	return scanUser(row)
}

// GetUserByName loads one profile by login name.
func (s *Store) GetUserByName(ctx context.Context, name string) (*domain.BaseInfo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE name = $1`, name)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*domain.BaseInfo, error) {
	var u domain.BaseInfo
	err := row.Scan(&u.UID, &u.Name, &u.Passwd, &u.Email, &u.Nick, &u.Desc, &u.Sex, &u.Icon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: scan user: %w", err)
	}
	return &u, nil
}
