package pg

import (
	"context"
	"database/sql"
	"time"

	shared_pg "github.com/itchan-dev/forum/shared/storage/pg"
	"github.com/itchan-dev/forum/shared/utils"
)

type Storage struct {
	db    *sql.DB
	newId func(prefix string) string
	now   func() time.Time
}

// New connects to dsn with the default pool settings.
func New(ctx context.Context, dsn string) (*Storage, error) {
	db, err := shared_pg.Connect(ctx, dsn, shared_pg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	return NewWithDB(db), nil
}

func NewWithDB(db *sql.DB) *Storage {
	return &Storage{
		db:    db,
		newId: utils.NewId,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
