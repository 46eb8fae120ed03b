package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
)

type AddThreadUseCase struct {
	threads ThreadRepository
}

func NewAddThreadUseCase(threads ThreadRepository) *AddThreadUseCase {
	return &AddThreadUseCase{threads: threads}
}

// Execute validates the payload and stores the thread. Thread creation has no
// existence or ownership preconditions.
func (u *AddThreadUseCase) Execute(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	thread, err := domain.NewAddThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}

	added, err := u.threads.AddThread(ctx, thread)
	if err != nil {
		return domain.AddedThread{}, err
	}
	logger.Log.Debug("thread created", "threadId", added.Id, "owner", added.Owner)
	return added, nil
}

type DetailThreadUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewDetailThreadUseCase(threads ThreadRepository, comments CommentRepository) *DetailThreadUseCase {
	return &DetailThreadUseCase{threads: threads, comments: comments}
}

// Execute loads a thread and its comments. Content of tombstoned comments is
// replaced with domain.DeletedCommentContent on every read; storage keeps the original.
func (u *DetailThreadUseCase) Execute(ctx context.Context, threadId domain.ThreadId) (domain.DetailThread, error) {
	if err := u.threads.VerifyThreadExist(ctx, threadId); err != nil {
		return domain.DetailThread{}, err
	}

	thread, err := u.threads.GetThreadByID(ctx, threadId)
	if err != nil {
		return domain.DetailThread{}, err
	}

	rows, err := u.comments.GetCommentsByThreadID(ctx, threadId)
	if err != nil {
		return domain.DetailThread{}, err
	}

	comments := make([]domain.DetailComment, 0, len(rows))
	for _, row := range rows {
		comment, err := domain.NewDetailComment(domain.Payload{
			"id":       row.Id,
			"content":  lo.Ternary(row.IsDelete, domain.DeletedCommentContent, row.Content),
			"username": row.Username,
			"date":     row.Date,
		})
		if err != nil {
			return domain.DetailThread{}, err
		}
		comments = append(comments, comment)
	}

	detail, err := domain.NewDetailThread(domain.Payload{
		"id":       thread.Id,
		"title":    thread.Title,
		"body":     thread.Body,
		"date":     thread.Date,
		"username": thread.Username,
		"comments": comments,
	})
	if err != nil {
		return domain.DetailThread{}, err
	}
	logger.Log.Debug("thread loaded", "thread", detail)
	return detail, nil
}
