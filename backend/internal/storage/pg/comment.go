package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	shared_pg "github.com/itchan-dev/forum/shared/storage/pg"
)

func (s *Storage) AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error) {
	var added domain.AddedComment
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO comments (id, thread_id, content, owner, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, content, owner
    `, s.newId("comment"), comment.ThreadId, comment.Content, comment.Owner, s.now()).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		// thread removed between the existence check and the insert
		if shared_pg.IsForeignKeyViolation(err) {
			return domain.AddedComment{}, &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}

func (s *Storage) GetCommentsByThreadID(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT c.id, c.content, c.date, u.username, c.is_delete
        FROM comments c
        LEFT JOIN users u ON u.id = c.owner
        WHERE c.thread_id = $1
        ORDER BY c.date ASC, c.seq ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentRow{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

func (s *Storage) GetCommentByID(ctx context.Context, id domain.CommentId) (domain.CommentRow, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT c.id, c.content, c.date, u.username, c.is_delete
        FROM comments c
        LEFT JOIN users u ON u.id = c.owner
        WHERE c.id = $1
    `, id)
	comment, err := scanComment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CommentRow{}, &internal_errors.NotFoundError{Message: "Komentar tidak ditemukan"}
		}
		return domain.CommentRow{}, err
	}
	return comment, nil
}

// DeleteCommentByID only ever sets the tombstone flag.
func (s *Storage) DeleteCommentByID(ctx context.Context, id domain.CommentId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE comments SET is_delete = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return &internal_errors.NotFoundError{Message: "Komentar tidak ditemukan"}
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	var stored domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM comments WHERE id = $1", id).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "Komentar tidak ditemukan"}
		}
		return fmt.Errorf("failed to get comment owner: %w", err)
	}
	if stored != owner {
		return &internal_errors.AuthorizationError{Message: "Anda tidak berhak mengakses resource ini"}
	}
	return nil
}

func (s *Storage) VerifyCommentExist(ctx context.Context, id domain.CommentId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return &internal_errors.NotFoundError{Message: "Komentar tidak ditemukan"}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanComment(row scanner) (domain.CommentRow, error) {
	var (
		comment  domain.CommentRow
		date     time.Time
		username sql.NullString
	)
	if err := row.Scan(&comment.Id, &comment.Content, &date, &username, &comment.IsDelete); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CommentRow{}, err
		}
		return domain.CommentRow{}, fmt.Errorf("failed to scan comment: %w", err)
	}
	comment.Date = domain.FormatDate(date)
	comment.Username = username.String
	return comment, nil
}
