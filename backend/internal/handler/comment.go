package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	// path and token win over anything the body claims
	payload["threadId"] = chi.URLParam(r, "threadId")
	payload["owner"] = user.Id

	added, err := h.addComment.Execute(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedCommentResponse{AddedComment: added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	err := h.deleteComment.Execute(r.Context(), domain.Payload{
		"id":       chi.URLParam(r, "commentId"),
		"threadId": chi.URLParam(r, "threadId"),
		"owner":    user.Id,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
