package handler

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
)

type ThreadAdder interface {
	Execute(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
}

type ThreadDetailer interface {
	Execute(ctx context.Context, threadId domain.ThreadId) (domain.DetailThread, error)
}

type CommentAdder interface {
	Execute(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
}

type CommentDeleter interface {
	Execute(ctx context.Context, payload domain.Payload) error
}

type AuthService interface {
	Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error)
	Login(ctx context.Context, payload domain.Payload) (string, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// UseCases groups everything the handler dispatches to.
type UseCases struct {
	AddThread     ThreadAdder
	DetailThread  ThreadDetailer
	AddComment    CommentAdder
	DeleteComment CommentDeleter
	Auth          AuthService
}

type Handler struct {
	addThread     ThreadAdder
	detailThread  ThreadDetailer
	addComment    CommentAdder
	deleteComment CommentDeleter
	auth          AuthService
	health        HealthChecker
}

func New(uc UseCases, health HealthChecker) *Handler {
	return &Handler{
		addThread:     uc.AddThread,
		detailThread:  uc.DetailThread,
		addComment:    uc.AddComment,
		deleteComment: uc.DeleteComment,
		auth:          uc.Auth,
		health:        health,
	}
}

func writeError(w http.ResponseWriter, err error) {
	utils.WriteErrorAndStatusCode(w, translate(err))
}

// requireUser returns the authenticated user or writes a 401.
func requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		writeError(w, &internal_errors.AuthenticationError{Message: "Missing authentication"})
		return nil, false
	}
	return user, true
}
