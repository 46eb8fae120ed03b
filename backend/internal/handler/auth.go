package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) PostUser(w http.ResponseWriter, r *http.Request) {
	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedUserResponse{AddedUser: user})
}

func (h *Handler) PostAuthentication(w http.ResponseWriter, r *http.Request) {
	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	accessToken, err := h.auth.Login(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AccessTokenResponse{AccessToken: accessToken})
}
