package handlers

import (
	"github.com/gofiber/fiber/v3"

	"mesto/internal/api/app/dto"
	"mesto/internal/api/app/http/middleware"
	"mesto/internal/api/ports/api"
)

// AuthHandler обрабатывает регистрацию и вход.
type AuthHandler struct {
	auth api.AuthUseCase
}

// NewAuthHandler создает обработчик авторизации.
func NewAuthHandler(auth api.AuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SignUp регистрирует пользователя и возвращает его без пароля.
func (h *AuthHandler) SignUp(c fiber.Ctx) error {
	req, err := middleware.Body[dto.SignUpRequest](c)
	if err != nil {
		return err
	}

	user, err := h.auth.SignUp(middleware.RequestContext(c), api.SignUpInput{
		Name:     deref(req.Name),
		About:    deref(req.About),
		Avatar:   deref(req.Avatar),
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusCreated, dto.NewUserResponse(user))
}

// SignIn проверяет почту и пароль и выдает токен.
func (h *AuthHandler) SignIn(c fiber.Ctx) error {
	req, err := middleware.Body[dto.SignInRequest](c)
	if err != nil {
		return err
	}

	session, err := h.auth.SignIn(middleware.RequestContext(c), req.Email, req.Password)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, dto.SignInResponse{
		Data:  dto.SessionData{ID: session.UserID},
		Token: session.Token,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
