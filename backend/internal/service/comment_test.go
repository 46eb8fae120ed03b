package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/itchan-dev/forum/backend/internal/service/mocks"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func TestAddCommentUseCase(t *testing.T) {
	ctx := context.Background()
	payload := domain.Payload{
		"content":  "sebuah comment",
		"owner":    "user-123",
		"threadId": "thread-123",
	}

	t.Run("verifies thread before writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		threads := mocks.NewMockThreadRepository(ctrl)
		comments := mocks.NewMockCommentRepository(ctrl)
		expected := domain.AddedComment{Id: "comment-123", Content: "sebuah comment", Owner: "user-123"}

		gomock.InOrder(
			threads.EXPECT().VerifyThreadExist(ctx, "thread-123").Return(nil),
			comments.EXPECT().
				AddComment(ctx, domain.AddComment{Content: "sebuah comment", Owner: "user-123", ThreadId: "thread-123"}).
				Return(expected, nil),
		)

		added, err := NewAddCommentUseCase(threads, comments).Execute(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, expected, added)
	})

	t.Run("missing thread prevents the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		threads := mocks.NewMockThreadRepository(ctrl)
		comments := mocks.NewMockCommentRepository(ctrl)
		notFound := &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}

		threads.EXPECT().VerifyThreadExist(ctx, "thread-123").Return(notFound)

		_, err := NewAddCommentUseCase(threads, comments).Execute(ctx, payload)
		assert.Same(t, notFound, err)
	})

	t.Run("invalid payload touches nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		threads := mocks.NewMockThreadRepository(ctrl)
		comments := mocks.NewMockCommentRepository(ctrl)

		_, err := NewAddCommentUseCase(threads, comments).Execute(ctx, domain.Payload{"threadId": "thread-123", "owner": "user-123"})
		var vErr *internal_errors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "ADD_COMMENT", vErr.Entity)
		assert.Equal(t, internal_errors.MissingField, vErr.Kind)
	})
}

func TestDeleteCommentUseCase(t *testing.T) {
	ctx := context.Background()
	payload := domain.Payload{
		"id":       "comment-123",
		"owner":    "user-123",
		"threadId": "thread-123",
	}

	t.Run("checks run in fixed order before the tombstone write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		threads := mocks.NewMockThreadRepository(ctrl)
		comments := mocks.NewMockCommentRepository(ctrl)

		gomock.InOrder(
			threads.EXPECT().VerifyThreadExist(ctx, "thread-123").Return(nil),
			comments.EXPECT().VerifyCommentExist(ctx, "comment-123").Return(nil),
			comments.EXPECT().VerifyCommentOwner(ctx, "comment-123", "user-123").Return(nil),
			comments.EXPECT().DeleteCommentByID(ctx, "comment-123").Return(nil),
		)

		require.NoError(t, NewDeleteCommentUseCase(threads, comments).Execute(ctx, payload))
	})

	t.Run("missing thread is reported before the comment is looked up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		threads := mocks.NewMockThreadRepository(ctrl)
		comments := mocks.NewMockCommentRepository(ctrl)
		notFound := &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}

		threads.EXPECT().VerifyThreadExist(ctx, "thread-123").Return(notFound)

		err := NewDeleteCommentUseCase(threads, comments).Execute(ctx, payload)
		assert.Same(t, notFound, err)
	})

	t.Run("missing comment is reported before ownership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		threads := mocks.NewMockThreadRepository(ctrl)
		comments := mocks.NewMockCommentRepository(ctrl)
		notFound := &internal_errors.NotFoundError{Message: "Komentar tidak ditemukan"}

		gomock.InOrder(
			threads.EXPECT().VerifyThreadExist(ctx, "thread-123").Return(nil),
			comments.EXPECT().VerifyCommentExist(ctx, "comment-123").Return(notFound),
		)

		err := NewDeleteCommentUseCase(threads, comments).Execute(ctx, payload)
		assert.Same(t, notFound, err)
	})

	t.Run("foreign owner never reaches the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		threads := mocks.NewMockThreadRepository(ctrl)
		comments := mocks.NewMockCommentRepository(ctrl)
		forbidden := &internal_errors.AuthorizationError{Message: "Anda tidak berhak mengakses resource ini"}

		gomock.InOrder(
			threads.EXPECT().VerifyThreadExist(ctx, "thread-123").Return(nil),
			comments.EXPECT().VerifyCommentExist(ctx, "comment-123").Return(nil),
			comments.EXPECT().VerifyCommentOwner(ctx, "comment-123", "user-456").Return(forbidden),
		)

		foreign := domain.Payload{"id": "comment-123", "owner": "user-456", "threadId": "thread-123"}
		err := NewDeleteCommentUseCase(threads, comments).Execute(ctx, foreign)
		assert.Same(t, forbidden, err)
	})

	t.Run("invalid payload touches nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		threads := mocks.NewMockThreadRepository(ctrl)
		comments := mocks.NewMockCommentRepository(ctrl)

		err := NewDeleteCommentUseCase(threads, comments).Execute(ctx, domain.Payload{"id": "comment-123", "owner": 123, "threadId": "thread-123"})
		var vErr *internal_errors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "DELETE_COMMENT", vErr.Entity)
		assert.Equal(t, internal_errors.WrongType, vErr.Kind)
	})
}
