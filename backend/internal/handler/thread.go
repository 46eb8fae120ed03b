package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) PostThread(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	payload["owner"] = user.Id

	added, err := h.addThread.Execute(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedThreadResponse{AddedThread: added})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	thread, err := h.detailThread.Execute(r.Context(), threadId)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.ThreadResponse{Thread: thread})
}
