package handler

import (
	"errors"
	"fmt"
	"net/http"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// validationMessages maps ValidationError codes to the messages clients see.
var validationMessages = map[string]string{
	"ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	"ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat membuat thread baru karena tipe data tidak sesuai",

	"ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada",
	"ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat membuat komentar baru karena tipe data tidak sesuai",

	"DELETE_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat menghapus komentar karena properti yang dibutuhkan tidak ada",
	"DELETE_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat menghapus komentar karena tipe data tidak sesuai",

	"REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY":           "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
	"REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION":      "tidak dapat membuat user baru karena tipe data tidak sesuai",
	"REGISTER_USER.USERNAME_LIMIT_CHAR":                   "tidak dapat membuat user baru karena karakter username melebihi batas limit",
	"REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER": "tidak dapat membuat user baru karena username mengandung karakter terlarang",

	"USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY":      "harus mengirimkan username dan password",
	"USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION": "username dan password harus string",
}

// translate turns a ValidationError into a 400 with its client message.
// Validation errors without a message come from output shapes and are
// server faults, so they lose their status code.
func translate(err error) error {
	var vErr *internal_errors.ValidationError
	if !errors.As(err, &vErr) {
		return err
	}
	message, ok := validationMessages[vErr.Code()]
	if !ok {
		return fmt.Errorf("untranslated validation error: %s", vErr.Error())
	}
	return &internal_errors.ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}
