package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error) {
	var added domain.AddedThread
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, owner, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, owner
    `, s.newId("thread"), thread.Title, thread.Body, thread.Owner, s.now()).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}

func (s *Storage) GetThreadByID(ctx context.Context, id domain.ThreadId) (domain.DetailThread, error) {
	var (
		thread   domain.DetailThread
		date     time.Time
		username sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
        SELECT t.id, t.title, t.body, t.date, u.username
        FROM threads t
        LEFT JOIN users u ON u.id = t.owner
        WHERE t.id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &date, &username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DetailThread{}, &internal_errors.NotFoundError{Message: "Thread tidak ditemukan"}
		}
		return domain.DetailThread{}, fmt.Errorf("failed to get thread: %w", err)
	}
	thread.Date = domain.FormatDate(date)
	thread.Username = username.String
	thread.Comments = []domain.DetailComment{}
	return thread, nil
}

func (s *Storage) VerifyThreadExist(ctx context.Context, id domain.ThreadId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
	}
	return nil
}

// GetThreads lists every thread, oldest first.
func (s *Storage) GetThreads(ctx context.Context) ([]domain.ThreadSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT t.id, t.title, t.date, u.username
        FROM threads t
        LEFT JOIN users u ON u.id = t.owner
        ORDER BY t.date ASC, t.id ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer rows.Close()

	threads := []domain.ThreadSummary{}
	for rows.Next() {
		var (
			thread   domain.ThreadSummary
			date     time.Time
			username sql.NullString
		)
		if err := rows.Scan(&thread.Id, &thread.Title, &date, &username); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		thread.Date = domain.FormatDate(date)
		thread.Username = username.String
		threads = append(threads, thread)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate threads: %w", err)
	}
	return threads, nil
}

func (s *Storage) VerifyThreadOwner(ctx context.Context, id domain.ThreadId, owner domain.UserId) error {
	var stored domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM threads WHERE id = $1", id).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return fmt.Errorf("failed to get thread owner: %w", err)
	}
	if stored != owner {
		return &internal_errors.AuthorizationError{Message: "Anda tidak berhak mengakses resource ini"}
	}
	return nil
}

// DeleteThreadByID removes the thread and, through the foreign key, its comments.
func (s *Storage) DeleteThreadByID(ctx context.Context, id domain.ThreadId) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM threads WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
	}
	return nil
}
