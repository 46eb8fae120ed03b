package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
)

// --- Mocks ---

type MockThreadAdder struct {
	ExecuteFunc func(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
}

func (m *MockThreadAdder) Execute(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, payload)
	}
	return domain.AddedThread{}, nil
}

type MockThreadDetailer struct {
	ExecuteFunc func(ctx context.Context, threadId domain.ThreadId) (domain.DetailThread, error)
}

func (m *MockThreadDetailer) Execute(ctx context.Context, threadId domain.ThreadId) (domain.DetailThread, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, threadId)
	}
	return domain.DetailThread{}, nil
}

type MockCommentAdder struct {
	ExecuteFunc func(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
}

func (m *MockCommentAdder) Execute(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, payload)
	}
	return domain.AddedComment{}, nil
}

type MockCommentDeleter struct {
	ExecuteFunc func(ctx context.Context, payload domain.Payload) error
}

func (m *MockCommentDeleter) Execute(ctx context.Context, payload domain.Payload) error {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, payload)
	}
	return nil
}

type MockAuthService struct {
	RegisterFunc func(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error)
	LoginFunc    func(ctx context.Context, payload domain.Payload) (string, error)
}

func (m *MockAuthService) Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, payload)
	}
	return domain.RegisteredUser{}, nil
}

func (m *MockAuthService) Login(ctx context.Context, payload domain.Payload) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, payload)
	}
	return "", nil
}

// --- Helpers ---

var testUser = &domain.User{Id: "user-123", Username: "dicoding"}

// withUser injects user into the request context the way the auth middleware does.
func withUser(user *domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user != nil {
				r = r.WithContext(context.WithValue(r.Context(), mw.UserClaimsKey, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func newTestRouter(h *Handler, user *domain.User) http.Handler {
	r := chi.NewRouter()
	r.Post("/users", h.PostUser)
	r.Post("/authentications", h.PostAuthentication)
	r.Get("/threads/{threadId}", h.GetThread)
	r.Group(func(r chi.Router) {
		r.Use(withUser(user))
		r.Post("/threads", h.PostThread)
		r.Post("/threads/{threadId}/comments", h.PostComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	})
	return r
}

type envelope struct {
	Status  string                     `json:"status"`
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
}

func do(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var env envelope
	if rr.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	}
	return rr, env
}
