package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
)

// GetUserThreads pages through uid's conversations ordered by thread
// id. lastID is the cursor from the previous page (0 for the first).
// One extra row is fetched beyond pageSize to learn whether more pages
// exist without a second query; the probe row is not returned.
func (s *Store) GetUserThreads(ctx context.Context, uid, lastID int64, pageSize int) ([]*domain.ChatThread, bool, int64, error) {
	rows, err := s.db.QueryContext(ctx, `
		WITH all_threads AS (
			SELECT thread_id, 'private' AS type, user1_id, user2_id
			FROM private_chat
			WHERE (user1_id = $1 OR user2_id = $1) AND thread_id > $2
			UNION ALL
			SELECT thread_id, 'group' AS type, 0 AS user1_id, 0 AS user2_id
			FROM group_chat_member
			WHERE user_id = $1 AND thread_id > $2
		)
		SELECT thread_id, type, user1_id, user2_id
		FROM all_threads
		ORDER BY thread_id
		LIMIT $3`, uid, lastID, pageSize+1)
	if err != nil {
		return nil, false, 0, fmt.Errorf("storage: user threads: %w", err)
	}
	defer rows.Close()

	var threads []*domain.ChatThread
	for rows.Next() {
		var t domain.ChatThread
		if err := rows.Scan(&t.ThreadID, &t.Type, &t.User1ID, &t.User2ID); err != nil {
			return nil, false, 0, fmt.Errorf("storage: scan thread: %w", err)
		}
		threads = append(threads, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, false, 0, fmt.Errorf("storage: thread rows: %w", err)
	}

	loadMore := len(threads) > pageSize
	if loadMore {
		threads = threads[:pageSize]
	}
	nextLastID := lastID
	if len(threads) > 0 {
		nextLastID = threads[len(threads)-1].ThreadID
	}
	return threads, loadMore, nextLastID, nil
}

// CreatePrivateChat returns the thread shared by users a and b,
// creating it when it does not exist yet. The pair is canonicalized by
// numeric order, so the argument order never matters, and the existence
// check locks the matching row so two concurrent creates for the same
// pair serialize and agree on one thread.
func (s *Store) CreatePrivateChat(ctx context.Context, a, b int64) (int64, error) {
	if a > b {
		a, b = b, a
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: create chat begin: %w", err)
	}
	defer tx.Rollback()

	var threadID int64
	err = tx.QueryRowContext(ctx, `
		SELECT thread_id FROM private_chat
		WHERE user1_id = $1 AND user2_id = $2
		FOR UPDATE`, a, b).Scan(&threadID)
	switch {
	case err == nil:
		if err := tx.Commit(); err != nil {
			return 0, fmt.Errorf("storage: create chat commit: %w", err)
		}
		return threadID, nil
	case errors.Is(err, sql.ErrNoRows):
		// fall through to create
	default:
		return 0, fmt.Errorf("storage: create chat lookup: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO chat_thread (type, created_at)
		VALUES ('private', NOW())
		RETURNING thread_id`).Scan(&threadID)
	if err != nil {
		return 0, fmt.Errorf("storage: create chat thread: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO private_chat (thread_id, user1_id, user2_id)
		VALUES ($1, $2, $3)`, threadID, a, b)
	if err != nil {
		return 0, fmt.Errorf("storage: create chat members: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: create chat commit: %w", err)
	}
	return threadID, nil
}
