//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks
package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

// ThreadRepository is the persistence capability the thread use cases depend on.
type ThreadRepository interface {
	AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error)
	// GetThreadByID returns the thread scalars with an empty comment list.
	GetThreadByID(ctx context.Context, id domain.ThreadId) (domain.DetailThread, error)
	// VerifyThreadExist fails with *errors.NotFoundError when the thread is absent.
	VerifyThreadExist(ctx context.Context, id domain.ThreadId) error
}

// CommentRepository is the persistence capability the comment use cases depend on.
type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error)
	// GetCommentsByThreadID returns raw rows ordered by date, then insertion order.
	GetCommentsByThreadID(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error)
	GetCommentByID(ctx context.Context, id domain.CommentId) (domain.CommentRow, error)
	// DeleteCommentByID sets the tombstone flag. Rows are never removed.
	DeleteCommentByID(ctx context.Context, id domain.CommentId) error
	// VerifyCommentOwner fails with *errors.NotFoundError for an unknown id and
	// *errors.AuthorizationError when owner differs from the stored owner.
	VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error
	VerifyCommentExist(ctx context.Context, id domain.CommentId) error
}

type UserRepository interface {
	AddUser(ctx context.Context, user domain.User) (domain.RegisteredUser, error)
	// VerifyAvailableUsername fails with *errors.InvariantError when the name is taken.
	VerifyAvailableUsername(ctx context.Context, username domain.Username) error
	GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error)
}
