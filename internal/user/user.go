package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrCPFAndEmailInUse   = errors.New("cpf and email already in use")
	ErrCPFInUse           = errors.New("cpf already in use")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is a registered account. CPF is stored digit-only.
type User struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	CPF               string    `json:"cpf"`
	PasswordHash      []byte    `json:"-"`
	ProfilePicture    string    `json:"profile_picture,omitempty"`
	ProfilePictureKey string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
}

// RegisterInput carries raw registration data as submitted by the client.
type RegisterInput struct {
	Name     string
	Email    string
	CPF      string
	Password string
}
