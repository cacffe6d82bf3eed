package handlers

import (
	"github.com/gofiber/fiber/v3"

	"mesto/internal/api/app/dto"
	"mesto/internal/api/app/http/middleware"
	"mesto/internal/api/ports/api"
)

// UserHandler обрабатывает запросы к профилям.
type UserHandler struct {
	users api.UserUseCase
}

// NewUserHandler создает обработчик профилей.
func NewUserHandler(users api.UserUseCase) *UserHandler {
	return &UserHandler{users: users}
}

// List возвращает всех пользователей.
func (h *UserHandler) List(c fiber.Ctx) error {
	users, err := h.users.List(middleware.RequestContext(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, dto.NewUserListResponse(users))
}

// Me возвращает профиль текущего пользователя.
func (h *UserHandler) Me(c fiber.Ctx) error {
	user, err := h.users.Get(middleware.RequestContext(c), middleware.UserID(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, dto.NewUserResponse(user))
}

// Get возвращает профиль по :userId.
func (h *UserHandler) Get(c fiber.Ctx) error {
	user, err := h.users.Get(middleware.RequestContext(c), c.Params("userId"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, dto.NewUserResponse(user))
}

// UpdateProfile меняет имя и описание текущего пользователя.
func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	req, err := middleware.Body[dto.UpdateProfileRequest](c)
	if err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(middleware.RequestContext(c), middleware.UserID(c), req.Name, req.About)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, dto.NewUserResponse(user))
}

// UpdateAvatar меняет аватар текущего пользователя.
func (h *UserHandler) UpdateAvatar(c fiber.Ctx) error {
	req, err := middleware.Body[dto.UpdateAvatarRequest](c)
	if err != nil {
		return err
	}

	user, err := h.users.UpdateAvatar(middleware.RequestContext(c), middleware.UserID(c), req.Avatar)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, dto.NewUserResponse(user))
}
