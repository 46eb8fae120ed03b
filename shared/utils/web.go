package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

const ServerFailureMessage = "terjadi kegagalan pada server kami"

type statusCoder interface {
	StatusCode() int
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, Response{Status: "success", Data: data})
}

func WriteFail(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, Response{Status: "fail", Message: message})
}

// WriteErrorAndStatusCode renders client errors as "fail" with their own message.
// Anything without a 4xx status is logged and hidden behind a generic 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var withCode *internal_errors.ErrorWithStatusCode
	if errors.As(err, &withCode) && withCode.StatusCode < http.StatusInternalServerError {
		WriteFail(w, withCode.StatusCode, withCode.Message)
		return
	}
	var coder statusCoder
	if errors.As(err, &coder) && coder.StatusCode() < http.StatusInternalServerError {
		WriteFail(w, coder.StatusCode(), err.Error())
		return
	}

	logger.Log.Error("internal error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, Response{Status: "error", Message: ServerFailureMessage})
}

// DecodePayload reads a JSON object body. An empty body decodes to an empty payload
// so that field checks report the missing properties.
func DecodePayload(r io.Reader) (domain.Payload, error) {
	payload := domain.Payload{}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Payload{}, nil
		}
		logger.Log.Debug("invalid request body", "error", err)
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	if payload == nil {
		return domain.Payload{}, nil
	}
	return payload, nil
}
