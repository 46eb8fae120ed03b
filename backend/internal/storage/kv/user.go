package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

type userRecord struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

var errUsernameTaken = &internal_errors.InvariantError{Message: "username tidak tersedia"}

func (s *Store) AddUser(ctx context.Context, user domain.User) (domain.RegisteredUser, error) {
	record := userRecord{
		Id:       s.newId("user"),
		Username: user.Username,
		Password: user.Password,
		Fullname: user.Fullname,
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		taken, err := exists(txn, usernameKey(record.Username))
		if err != nil {
			return err
		}
		if taken {
			return errUsernameTaken
		}
		if err := setJSON(txn, userKey(record.Id), record); err != nil {
			return err
		}
		return txn.Set(usernameKey(record.Username), []byte(record.Id))
	})
	if err != nil {
		if internal_errors.Is[*internal_errors.InvariantError](err) {
			return domain.RegisteredUser{}, err
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to store user: %w", err)
	}
	return domain.RegisteredUser{Id: record.Id, Username: record.Username, Fullname: record.Fullname}, nil
}

func (s *Store) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	var taken bool
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		taken, err = exists(txn, usernameKey(username))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return errUsernameTaken
	}
	return nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	var record userRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return getJSON(txn, userKey(string(id)), &record)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.User{}, &internal_errors.NotFoundError{Message: "user tidak ditemukan"}
		}
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return domain.User{Id: record.Id, Username: record.Username, Password: record.Password, Fullname: record.Fullname}, nil
}
