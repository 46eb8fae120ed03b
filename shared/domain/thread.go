package domain

import (
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// AddThread is the validated request to open a new thread.
type AddThread struct {
	Title ThreadTitle
	Body  string
	Owner UserId
}

func NewAddThread(p Payload) (AddThread, error) {
	v, err := requireStrings(p, "ADD_THREAD", "title", "body", "owner")
	if err != nil {
		return AddThread{}, err
	}
	return AddThread{Title: v[0], Body: v[1], Owner: v[2]}, nil
}

// AddedThread acknowledges a created thread. Body and date are deliberately left out.
type AddedThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}

func NewAddedThread(p Payload) (AddedThread, error) {
	v, err := requireStrings(p, "ADDED_THREAD", "id", "title", "owner")
	if err != nil {
		return AddedThread{}, err
	}
	return AddedThread{Id: v[0], Title: v[1], Owner: v[2]}, nil
}

// DetailThread is the read projection of a thread with its comments in date order.
type DetailThread struct {
	Id       ThreadId        `json:"id"`
	Title    ThreadTitle     `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username Username        `json:"username"`
	Comments []DetailComment `json:"comments"`
}

// NewDetailThread validates the scalar fields. "comments" may be absent (empty list);
// when present it must already be a []DetailComment, its elements are trusted.
func NewDetailThread(p Payload) (DetailThread, error) {
	v, err := requireStrings(p, "DETAIL_THREAD", "id", "title", "body", "date", "username")
	if err != nil {
		return DetailThread{}, err
	}

	comments := []DetailComment{}
	if raw, ok := p["comments"]; ok && raw != nil {
		typed, ok := raw.([]DetailComment)
		if !ok {
			return DetailThread{}, &internal_errors.ValidationError{Entity: "DETAIL_THREAD", Kind: internal_errors.WrongType, Field: "comments"}
		}
		if typed != nil {
			comments = typed
		}
	}

	return DetailThread{
		Id:       v[0],
		Title:    v[1],
		Body:     v[2],
		Date:     v[3],
		Username: v[4],
		Comments: comments,
	}, nil
}

// WithComments returns a copy of the thread carrying the given comments.
func (t DetailThread) WithComments(comments []DetailComment) DetailThread {
	t.Comments = append([]DetailComment(nil), comments...)
	return t
}

// ThreadSummary is a thread listing entry without body or comments.
type ThreadSummary struct {
	Id       ThreadId    `json:"id"`
	Title    ThreadTitle `json:"title"`
	Date     string      `json:"date"`
	Username Username    `json:"username"`
}
