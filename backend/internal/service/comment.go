package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
)

type AddCommentUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewAddCommentUseCase(threads ThreadRepository, comments CommentRepository) *AddCommentUseCase {
	return &AddCommentUseCase{threads: threads, comments: comments}
}

// Execute stores a comment after confirming the parent thread exists.
func (u *AddCommentUseCase) Execute(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	comment, err := domain.NewAddComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}

	if err := u.threads.VerifyThreadExist(ctx, comment.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}

	added, err := u.comments.AddComment(ctx, comment)
	if err != nil {
		return domain.AddedComment{}, err
	}
	logger.Log.Debug("comment created", "commentId", added.Id, "threadId", comment.ThreadId)
	return added, nil
}

type DeleteCommentUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewDeleteCommentUseCase(threads ThreadRepository, comments CommentRepository) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{threads: threads, comments: comments}
}

// Execute tombstones a comment. Checks run strictly in this order and nothing is
// written until all of them pass:
//
//	thread exists -> comment exists -> caller owns comment -> set tombstone
//
// The chain is not transactional; a concurrent delete between the checks and the
// write only sets an already-set flag.
func (u *DeleteCommentUseCase) Execute(ctx context.Context, payload domain.Payload) error {
	del, err := domain.NewDeleteComment(payload)
	if err != nil {
		return err
	}

	if err := u.threads.VerifyThreadExist(ctx, del.ThreadId); err != nil {
		return err
	}
	if err := u.comments.VerifyCommentExist(ctx, del.Id); err != nil {
		return err
	}
	if err := u.comments.VerifyCommentOwner(ctx, del.Id, del.Owner); err != nil {
		return err
	}
	if err := u.comments.DeleteCommentByID(ctx, del.Id); err != nil {
		return err
	}
	logger.Log.Debug("comment deleted", "commentId", del.Id, "threadId", del.ThreadId)
	return nil
}
