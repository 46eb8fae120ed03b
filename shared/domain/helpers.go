package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout renders timestamps the way API consumers expect: UTC, millisecond precision.
const DateLayout = "2006-01-02T15:04:05.000Z"

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// for debug
func (c DetailComment) String() string {
	return fmt.Sprintf("[id:%s, username:%s, date:%s, content:%s]", c.Id, c.Username, c.Date, c.Content)
}

func (t DetailThread) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[id:%s, title:%s, username:%s, date:%s, comments:[", t.Id, t.Title, t.Username, t.Date)
	for i, c := range t.Comments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString("]]")
	return sb.String()
}
