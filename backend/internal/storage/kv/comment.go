package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

type commentRecord struct {
	Id       string    `json:"id"`
	ThreadId string    `json:"threadId"`
	Content  string    `json:"content"`
	Owner    string    `json:"owner"`
	Date     time.Time `json:"date"`
	IsDelete bool      `json:"isDelete"`
	Seq      uint64    `json:"seq"`
}

var errCommentNotFound = &internal_errors.NotFoundError{Message: "Komentar tidak ditemukan"}

func (s *Store) AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error) {
	seq, err := s.seq.Next()
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to allocate comment sequence: %w", err)
	}
	record := commentRecord{
		Id:       s.newId("comment"),
		ThreadId: comment.ThreadId,
		Content:  comment.Content,
		Owner:    comment.Owner,
		Date:     s.now(),
		Seq:      seq,
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		found, err := exists(txn, threadKey(record.ThreadId))
		if err != nil {
			return err
		}
		if !found {
			return badger.ErrKeyNotFound
		}
		if err := setJSON(txn, commentKey(record.Id), record); err != nil {
			return err
		}
		return txn.Set(threadCommentKey(record.ThreadId, record.Date, record.Seq), []byte(record.Id))
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.AddedComment{}, &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return domain.AddedComment{}, fmt.Errorf("failed to store comment: %w", err)
	}
	return domain.AddedComment{Id: record.Id, Content: record.Content, Owner: record.Owner}, nil
}

func (s *Store) GetCommentsByThreadID(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	comments := []domain.CommentRow{}
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := threadCommentsPrefix(threadId)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var commentId string
			if err := it.Item().Value(func(val []byte) error {
				commentId = string(val)
				return nil
			}); err != nil {
				return err
			}
			row, err := commentRow(txn, commentId)
			if err != nil {
				return err
			}
			comments = append(comments, row)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return comments, nil
}

func (s *Store) GetCommentByID(ctx context.Context, id domain.CommentId) (domain.CommentRow, error) {
	var row domain.CommentRow
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		row, err = commentRow(txn, id)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.CommentRow{}, errCommentNotFound
		}
		return domain.CommentRow{}, fmt.Errorf("failed to get comment: %w", err)
	}
	return row, nil
}

// DeleteCommentByID only ever sets the tombstone flag.
func (s *Store) DeleteCommentByID(ctx context.Context, id domain.CommentId) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		var record commentRecord
		if err := getJSON(txn, commentKey(id), &record); err != nil {
			return err
		}
		record.IsDelete = true
		return setJSON(txn, commentKey(id), record)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errCommentNotFound
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *Store) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	var record commentRecord
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, commentKey(id), &record)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errCommentNotFound
		}
		return fmt.Errorf("failed to get comment owner: %w", err)
	}
	if record.Owner != owner {
		return &internal_errors.AuthorizationError{Message: "Anda tidak berhak mengakses resource ini"}
	}
	return nil
}

func (s *Store) VerifyCommentExist(ctx context.Context, id domain.CommentId) error {
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		found, err = exists(txn, commentKey(id))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !found {
		return errCommentNotFound
	}
	return nil
}

func commentRow(txn *badger.Txn, id string) (domain.CommentRow, error) {
	item, err := txn.Get(commentKey(id))
	if err != nil {
		return domain.CommentRow{}, err
	}
	var record commentRecord
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &record)
	}); err != nil {
		return domain.CommentRow{}, err
	}
	username, err := usernameOf(txn, record.Owner)
	if err != nil {
		return domain.CommentRow{}, err
	}
	return domain.CommentRow{
		Id:       record.Id,
		Content:  record.Content,
		Date:     domain.FormatDate(record.Date),
		Username: username,
		IsDelete: record.IsDelete,
	}, nil
}
