package storage

import (
	"context"
	"fmt"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
)

// GetApplyList returns friend applications addressed to toUID, newest
// last, starting after the row id afterID. The row id is the pagination
// cursor the client echoes back.
func (s *Store) GetApplyList(ctx context.Context, toUID, afterID int64, limit int) ([]*domain.ApplyInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.from_uid, a.status, u.name, u.nick, u."desc", u.sex, u.icon
		FROM friend_apply AS a
		JOIN users AS u ON a.from_uid = u.uid
		WHERE a.to_uid = $1 AND a.id > $2
		ORDER BY a.id ASC
		LIMIT $3`, toUID, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: apply list: %w", err)
	}
	defer rows.Close()

	var applies []*domain.ApplyInfo
	for rows.Next() {
		var a domain.ApplyInfo
		if err := rows.Scan(&a.ID, &a.UID, &a.Status, &a.Name, &a.Nick, &a.Desc, &a.Sex, &a.Icon); err != nil {
			return nil, fmt.Errorf("storage: scan apply: %w", err)
		}
		applies = append(applies, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: apply rows: %w", err)
	}
	return applies, nil
}

// GetFriendList returns uid's friends with their profiles and the
// private display name uid gave each of them.
func (s *Store) GetFriendList(ctx context.Context, uid int64) ([]*domain.BaseInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.uid, u.name, u.pwd, u.email, u.nick, u."desc", u.sex, u.icon, f.back
		FROM friends AS f
		JOIN users AS u ON f.friend_id = u.uid
		WHERE f.self_id = $1`, uid)
	if err != nil {
		return nil, fmt.Errorf("storage: friend list: %w", err)
	}
	defer rows.Close()

	var friends []*domain.BaseInfo
	for rows.Next() {
		var u domain.BaseInfo
		if err := rows.Scan(&u.UID, &u.Name, &u.Passwd, &u.Email, &u.Nick, &u.Desc, &u.Sex, &u.Icon, &u.Back); err != nil {
			return nil, fmt.Errorf("storage: scan friend: %w", err)
		}
		friends = append(friends, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: friend rows: %w", err)
	}
	return friends, nil
}

// AddFriendApply records an application from fromUID to toUID. A
// repeated application is absorbed instead of duplicated.
func (s *Store) AddFriendApply(ctx context.Context, fromUID, toUID int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO friend_apply (from_uid, to_uid, status)
		VALUES ($1, $2, 0)
		ON CONFLICT (from_uid, to_uid) DO NOTHING`, fromUID, toUID)
	if err != nil {
		return fmt.Errorf("storage: add apply: %w", err)
	}
	return nil
}

// AuthFriendApply marks the application from fromUID to toUID as
// authorized.
func (s *Store) AuthFriendApply(ctx context.Context, fromUID, toUID int64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE friend_apply SET status = 1
		WHERE from_uid = $1 AND to_uid = $2`, fromUID, toUID)
	if err != nil {
		return fmt.Errorf("storage: auth apply: %w", err)
	}
	return nil
}

// AddFriend makes fromUID and toUID friends in both directions inside
// one transaction. backName is the private display name fromUID chose
// for toUID; the reverse row starts without one.
func (s *Store) AddFriend(ctx context.Context, fromUID, toUID int64, backName string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: add friend begin: %w", err)
	}
	defer tx.Rollback()

	const insert = `
		INSERT INTO friends (self_id, friend_id, back)
		VALUES ($1, $2, $3)
		ON CONFLICT (self_id, friend_id) DO NOTHING`
	if _, err := tx.ExecContext(ctx, insert, fromUID, toUID, backName); err != nil {
		return fmt.Errorf("storage: add friend forward: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insert, toUID, fromUID, ""); err != nil {
		return fmt.Errorf("storage: add friend reverse: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: add friend commit: %w", err)
	}
	return nil
}
