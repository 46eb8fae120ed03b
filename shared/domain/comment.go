package domain

type AddComment struct {
	Content  CommentContent
	Owner    UserId
	ThreadId ThreadId
}

func NewAddComment(p Payload) (AddComment, error) {
	v, err := requireStrings(p, "ADD_COMMENT", "content", "owner", "threadId")
	if err != nil {
		return AddComment{}, err
	}
	return AddComment{Content: v[0], Owner: v[1], ThreadId: v[2]}, nil
}

type AddedComment struct {
	Id      CommentId      `json:"id"`
	Content CommentContent `json:"content"`
	Owner   UserId         `json:"owner"`
}

func NewAddedComment(p Payload) (AddedComment, error) {
	v, err := requireStrings(p, "ADDED_COMMENT", "id", "content", "owner")
	if err != nil {
		return AddedComment{}, err
	}
	return AddedComment{Id: v[0], Content: v[1], Owner: v[2]}, nil
}

// DeleteComment locates a single comment inside a single thread on behalf of owner.
type DeleteComment struct {
	Id       CommentId
	Owner    UserId
	ThreadId ThreadId
}

func NewDeleteComment(p Payload) (DeleteComment, error) {
	v, err := requireStrings(p, "DELETE_COMMENT", "id", "owner", "threadId")
	if err != nil {
		return DeleteComment{}, err
	}
	return DeleteComment{Id: v[0], Owner: v[1], ThreadId: v[2]}, nil
}

// DetailComment is an output-only projection of a comment.
type DetailComment struct {
	Id       CommentId      `json:"id"`
	Username Username       `json:"username"`
	Date     string         `json:"date"`
	Content  CommentContent `json:"content"`
}

func NewDetailComment(p Payload) (DetailComment, error) {
	v, err := requireStrings(p, "DETAIL_COMMENT", "id", "content", "username", "date")
	if err != nil {
		return DetailComment{}, err
	}
	return DetailComment{Id: v[0], Content: v[1], Username: v[2], Date: v[3]}, nil
}

// CommentRow is a comment as storage returns it: content is the stored text
// regardless of IsDelete.
type CommentRow struct {
	Id       CommentId
	Content  CommentContent
	Date     string
	Username Username
	IsDelete bool
}
