package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

type threadRecord struct {
	Id    string    `json:"id"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
	Owner string    `json:"owner"`
	Date  time.Time `json:"date"`
}

func (s *Store) AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error) {
	record := threadRecord{
		Id:    s.newId("thread"),
		Title: thread.Title,
		Body:  thread.Body,
		Owner: thread.Owner,
		Date:  s.now(),
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, threadKey(record.Id), record)
	})
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to store thread: %w", err)
	}
	return domain.AddedThread{Id: record.Id, Title: record.Title, Owner: record.Owner}, nil
}

func (s *Store) GetThreadByID(ctx context.Context, id domain.ThreadId) (domain.DetailThread, error) {
	var thread domain.DetailThread
	err := s.db.View(func(txn *badger.Txn) error {
		var record threadRecord
		if err := getJSON(txn, threadKey(id), &record); err != nil {
			return err
		}
		username, err := usernameOf(txn, record.Owner)
		if err != nil {
			return err
		}
		thread = domain.DetailThread{
			Id:       record.Id,
			Title:    record.Title,
			Body:     record.Body,
			Date:     domain.FormatDate(record.Date),
			Username: username,
			Comments: []domain.DetailComment{},
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.DetailThread{}, &internal_errors.NotFoundError{Message: "Thread tidak ditemukan"}
		}
		return domain.DetailThread{}, fmt.Errorf("failed to get thread: %w", err)
	}
	return thread, nil
}

func (s *Store) VerifyThreadExist(ctx context.Context, id domain.ThreadId) error {
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		found, err = exists(txn, threadKey(id))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !found {
		return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
	}
	return nil
}

// GetThreads lists every thread, oldest first.
func (s *Store) GetThreads(ctx context.Context) ([]domain.ThreadSummary, error) {
	records := []threadRecord{}
	usernames := map[string]string{}
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte("thread:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record threadRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			}); err != nil {
				return err
			}
			if _, ok := usernames[record.Owner]; !ok {
				name, err := usernameOf(txn, record.Owner)
				if err != nil {
					return err
				}
				usernames[record.Owner] = name
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return lo.Map(records, func(record threadRecord, _ int) domain.ThreadSummary {
		return domain.ThreadSummary{
			Id:       record.Id,
			Title:    record.Title,
			Date:     domain.FormatDate(record.Date),
			Username: usernames[record.Owner],
		}
	}), nil
}

func (s *Store) VerifyThreadOwner(ctx context.Context, id domain.ThreadId, owner domain.UserId) error {
	var record threadRecord
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, threadKey(id), &record)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return fmt.Errorf("failed to get thread owner: %w", err)
	}
	if record.Owner != owner {
		return &internal_errors.AuthorizationError{Message: "Anda tidak berhak mengakses resource ini"}
	}
	return nil
}

// DeleteThreadByID removes the thread together with its comments and index entries.
func (s *Store) DeleteThreadByID(ctx context.Context, id domain.ThreadId) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		found, err := exists(txn, threadKey(id))
		if err != nil {
			return err
		}
		if !found {
			return badger.ErrKeyNotFound
		}

		prefix := threadCommentsPrefix(id)
		var indexKeys, commentIds [][]byte
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			indexKeys = append(indexKeys, item.KeyCopy(nil))
			commentId, err := item.ValueCopy(nil)
			if err != nil {
				it.Close()
				return err
			}
			commentIds = append(commentIds, commentId)
		}
		it.Close()

		for i := range indexKeys {
			if err := txn.Delete(indexKeys[i]); err != nil {
				return err
			}
			if err := txn.Delete(commentKey(string(commentIds[i]))); err != nil {
				return err
			}
		}
		return txn.Delete(threadKey(id))
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	return nil
}
