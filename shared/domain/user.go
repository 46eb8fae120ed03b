package domain

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

const usernameMaxLen = 50

var (
	usernamePattern = regexp.MustCompile(`^[\w]+$`)
	validate        = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// errors are impossible here: the tag is non-empty and fn is non-nil
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return v
}

// User is a stored account. Password holds the bcrypt hash.
type User struct {
	Id       UserId
	Username Username
	Password Password
	Fullname string
}

type RegisterUser struct {
	Username Username
	Password Password
	Fullname string
}

func NewRegisterUser(p Payload) (RegisterUser, error) {
	const entity = "REGISTER_USER"
	v, err := requireStrings(p, entity, "username", "password", "fullname")
	if err != nil {
		return RegisterUser{}, err
	}

	if err := validate.Var(v[0], fmt.Sprintf("max=%d", usernameMaxLen)); err != nil {
		return RegisterUser{}, &internal_errors.ValidationError{Entity: entity, Kind: internal_errors.LimitChar, Field: "username"}
	}
	if err := validate.Var(v[0], "username"); err != nil {
		return RegisterUser{}, &internal_errors.ValidationError{Entity: entity, Kind: internal_errors.RestrictedChar, Field: "username"}
	}

	return RegisterUser{Username: v[0], Password: v[1], Fullname: v[2]}, nil
}

type RegisteredUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}

func NewRegisteredUser(p Payload) (RegisteredUser, error) {
	v, err := requireStrings(p, "REGISTERED_USER", "id", "username", "fullname")
	if err != nil {
		return RegisteredUser{}, err
	}
	return RegisteredUser{Id: v[0], Username: v[1], Fullname: v[2]}, nil
}

type UserLogin struct {
	Username Username
	Password Password
}

func NewUserLogin(p Payload) (UserLogin, error) {
	v, err := requireStrings(p, "USER_LOGIN", "username", "password")
	if err != nil {
		return UserLogin{}, err
	}
	return UserLogin{Username: v[0], Password: v[1]}, nil
}
