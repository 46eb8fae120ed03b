// Package kv stores forum data in an embedded badger database.
//
// Key layout:
//
//	user:<id>                               -> userRecord
//	username:<name>                         -> user id
//	thread:<id>                             -> threadRecord
//	comment:<id>                            -> commentRecord
//	tcomment:<threadId>:<unixnano>:<seq>    -> comment id
//
// The tcomment index pads both numbers to 19 digits, so a prefix scan yields a
// thread's comments ordered by date and then by insertion.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/utils"
)

const seqBandwidth = 100

var errClosed = errors.New("badger database is closed")

type Store struct {
	db    *badger.DB
	seq   *badger.Sequence
	log   *slog.Logger
	newId func(prefix string) string
	now   func() time.Time
}

// Open opens (or creates) a database in dir.
func Open(dir string) (*Store, error) {
	return open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	seq, err := db.GetSequence([]byte("seq:comment"), seqBandwidth)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open comment sequence: %w", err)
	}
	return &Store{
		db:    db,
		seq:   seq,
		log:   logger.Component("kv"),
		newId: utils.NewId,
		now:   func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return errClosed
	}
	return nil
}

func (s *Store) Cleanup() error {
	if err := s.seq.Release(); err != nil {
		s.log.Warn("failed to release comment sequence", "error", err)
	}
	return s.db.Close()
}

func userKey(id string) []byte       { return []byte("user:" + id) }
func usernameKey(name string) []byte { return []byte("username:" + name) }
func threadKey(id string) []byte     { return []byte("thread:" + id) }
func commentKey(id string) []byte    { return []byte("comment:" + id) }

func threadCommentsPrefix(threadId string) []byte {
	return []byte("tcomment:" + threadId + ":")
}

func threadCommentKey(threadId string, date time.Time, seq uint64) []byte {
	return []byte(fmt.Sprintf("tcomment:%s:%019d:%019d", threadId, date.UnixNano(), seq))
}

func getJSON(txn *badger.Txn, key []byte, v any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func setJSON(txn *badger.Txn, key []byte, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set(key, b)
}

func exists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// usernameOf resolves an owner id the way a LEFT JOIN would: unknown owners yield "".
func usernameOf(txn *badger.Txn, owner string) (string, error) {
	var user userRecord
	err := getJSON(txn, userKey(owner), &user)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.Username, nil
}
