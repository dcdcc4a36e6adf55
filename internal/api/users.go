package api

import (
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/pixkit/handler"
	"github.com/dmitrymomot/pixkit/internal/user"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profilePictureRequest struct {
	UserID  string                `path:"id"`
	Picture *multipart.FileHeader `file:"profile_picture"`
}

func (a *API) register(ctx handler.Context, req registerRequest) handler.Response {
	u, err := a.users.Register(ctx, user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		CPF:      req.CPF,
		Password: req.Password,
	})
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(u, handler.WithJSONStatus(http.StatusCreated))
}

// login only checks the credentials; no session or token is issued.
func (a *API) login(ctx handler.Context, req loginRequest) handler.Response {
	u, err := a.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(u)
}

func (a *API) uploadProfilePicture(ctx handler.Context, req profilePictureRequest) handler.Response {
	id, err := uuid.Parse(req.UserID)
	if err != nil {
		return handler.Error(errUserNotFound)
	}

	u, err := a.users.SetProfilePicture(ctx, id, req.Picture)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(u)
}
