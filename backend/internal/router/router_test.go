package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itchan-dev/forum/backend/internal/setup"
	"github.com/itchan-dev/forum/backend/internal/storage/kv"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/config"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type client struct {
	t      *testing.T
	server *httptest.Server
}

func newClient(t *testing.T) *client {
	t.Helper()
	store, err := kv.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Cleanup() })

	cfg := config.New(
		config.Public{JwtTTL: time.Hour, Storage: config.Storage{Driver: config.DriverBadger}},
		config.Private{JwtKey: "test_secret"},
	)
	server := httptest.NewServer(New(setup.NewDependencies(cfg, store)))
	t.Cleanup(server.Close)
	return &client{t: t, server: server}
}

func (c *client) do(method, path, token, body string, data any) (int, envelope) {
	c.t.Helper()
	req, err := http.NewRequest(method, c.server.URL+path, strings.NewReader(body))
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&env))
	if data != nil && len(env.Data) > 0 {
		require.NoError(c.t, json.Unmarshal(env.Data, data))
	}
	return resp.StatusCode, env
}

func (c *client) login(username string) string {
	c.t.Helper()
	status, _ := c.do(http.MethodPost, "/users", "", `{"username":"`+username+`","password":"secret","fullname":"Test User"}`, nil)
	require.Equal(c.t, http.StatusCreated, status)

	var data api.AccessTokenResponse
	status, _ = c.do(http.MethodPost, "/authentications", "", `{"username":"`+username+`","password":"secret"}`, &data)
	require.Equal(c.t, http.StatusCreated, status)
	require.NotEmpty(c.t, data.AccessToken)
	return data.AccessToken
}

func TestForumFlow(t *testing.T) {
	c := newClient(t)
	alice := c.login("alice")
	bob := c.login("bob")

	var threadData api.AddedThreadResponse
	status, _ := c.do(http.MethodPost, "/threads", alice, `{"title":"sebuah thread","body":"isi thread"}`, &threadData)
	require.Equal(t, http.StatusCreated, status)
	threadId := threadData.AddedThread.Id
	assert.True(t, strings.HasPrefix(threadId, "thread-"))

	var commentData api.AddedCommentResponse
	status, _ = c.do(http.MethodPost, "/threads/"+threadId+"/comments", bob, `{"content":"sebuah comment"}`, &commentData)
	require.Equal(t, http.StatusCreated, status)
	commentId := commentData.AddedComment.Id

	status, env := c.do(http.MethodDelete, "/threads/"+threadId+"/comments/"+commentId, alice, "", nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Anda tidak berhak mengakses resource ini", env.Message)

	status, env = c.do(http.MethodDelete, "/threads/"+threadId+"/comments/"+commentId, bob, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", env.Status)

	var detail api.ThreadResponse
	status, _ = c.do(http.MethodGet, "/threads/"+threadId, "", "", &detail)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", detail.Thread.Username)
	require.Len(t, detail.Thread.Comments, 1)
	assert.Equal(t, "**komentar telah dihapus**", detail.Thread.Comments[0].Content)
	assert.Equal(t, "bob", detail.Thread.Comments[0].Username)
}

func TestErrors(t *testing.T) {
	c := newClient(t)
	token := c.login("dicoding")

	t.Run("missing token", func(t *testing.T) {
		status, env := c.do(http.MethodPost, "/threads", "", `{"title":"a","body":"b"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Missing authentication", env.Message)
	})

	t.Run("incomplete thread", func(t *testing.T) {
		status, env := c.do(http.MethodPost, "/threads", token, `{"title":"a"}`, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "fail", env.Status)
		assert.Equal(t, "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada", env.Message)
	})

	t.Run("unknown thread", func(t *testing.T) {
		status, env := c.do(http.MethodGet, "/threads/thread-404", "", "", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "thread tidak ditemukan", env.Message)

		status, _ = c.do(http.MethodPost, "/threads/thread-404/comments", token, `{"content":"x"}`, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("username taken", func(t *testing.T) {
		status, env := c.do(http.MethodPost, "/users", "", `{"username":"dicoding","password":"x","fullname":"x"}`, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "username tidak tersedia", env.Message)
	})

	t.Run("unknown user login", func(t *testing.T) {
		status, env := c.do(http.MethodPost, "/authentications", "", `{"username":"ghost","password":"x"}`, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "username tidak ditemukan", env.Message)
	})
}

func TestOperationalEndpoints(t *testing.T) {
	c := newClient(t)

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		resp, err := c.server.Client().Get(c.server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
