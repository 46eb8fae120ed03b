// Package api holds the data payloads of the HTTP responses.
package api

import (
	"github.com/itchan-dev/forum/shared/domain"
)

type AddedUserResponse struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type AddedThreadResponse struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadResponse struct {
	Thread domain.DetailThread `json:"thread"`
}

type AddedCommentResponse struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}
