package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	shared_pg "github.com/itchan-dev/forum/shared/storage/pg"
)

var errUsernameTaken = &internal_errors.InvariantError{Message: "username tidak tersedia"}

func (s *Storage) AddUser(ctx context.Context, user domain.User) (domain.RegisteredUser, error) {
	var registered domain.RegisteredUser
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, s.newId("user"), user.Username, user.Password, user.Fullname).Scan(&registered.Id, &registered.Username, &registered.Fullname)
	if err != nil {
		if shared_pg.IsUniqueViolation(err) {
			return domain.RegisteredUser{}, errUsernameTaken
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return registered, nil
}

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	var taken bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username).Scan(&taken)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return errUsernameTaken
	}
	return nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx, `
        SELECT id, username, password, fullname FROM users WHERE username = $1
    `, username).Scan(&user.Id, &user.Username, &user.Password, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.NotFoundError{Message: "user tidak ditemukan"}
		}
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
