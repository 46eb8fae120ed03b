package domain

type (
	UserId   = string
	Username = string
	Password = string

	ThreadId    = string
	ThreadTitle = string

	CommentId      = string
	CommentContent = string
)

// Payload is a raw inbound or outbound record, shaped like a decoded JSON object
// merged with fields supplied by the transport (owner, path ids).
type Payload map[string]any

// DeletedCommentContent replaces the content of a tombstoned comment on every read.
const DeletedCommentContent = "**komentar telah dihapus**"
