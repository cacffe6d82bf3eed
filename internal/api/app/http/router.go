// Package http содержит HTTP сервер сервиса mesto.
package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"mesto/internal/api/app/dto"
	"mesto/internal/api/app/http/handlers"
	"mesto/internal/api/app/http/middleware"
	"mesto/internal/api/config"
	"mesto/internal/api/domain/apperr"
	"mesto/internal/api/ports/api"
)

// Services - сценарии использования, которые обслуживает HTTP сервер.
type Services struct {
	Auth  api.AuthUseCase
	Users api.UserUseCase
	Cards api.CardUseCase
}

// NewApp создает fiber.App с ErrorHandler и маршрутами.
func NewApp(cfg *config.HTTPConfig, services Services) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: ErrorHandler,
	})

	SetupRouter(app, dto.NewValidator(), services)
	return app
}

// SetupRouter настраивает маршрутизацию.
func SetupRouter(app *fiber.App, v *validator.Validate, services Services) {
	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.Users)
	cardHandler := handlers.NewCardHandler(services.Cards)

	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Публичные маршруты. В fiber обработчик передается первым,
	// промежуточные обработчики после него выполняются раньше.
	app.Post("/signin", authHandler.SignIn, middleware.ValidateBody[dto.SignInRequest](v))
	app.Post("/signup", authHandler.SignUp, middleware.ValidateBody[dto.SignUpRequest](v))

	authMiddleware := middleware.NewAuthMiddleware(services.Auth)

	users := app.Group("/users", authMiddleware)
	users.Get("/", userHandler.List)
	users.Get("/me", userHandler.Me)
	users.Get("/:userId", userHandler.Get, middleware.ValidateObjectID(v, "userId"))
	users.Patch("/me", userHandler.UpdateProfile, middleware.ValidateBody[dto.UpdateProfileRequest](v))
	users.Patch("/me/avatar", userHandler.UpdateAvatar, middleware.ValidateBody[dto.UpdateAvatarRequest](v))

	cards := app.Group("/cards", authMiddleware)
	cards.Get("/", cardHandler.List)
	cards.Post("/", cardHandler.Create, middleware.ValidateBody[dto.CreateCardRequest](v))
	cards.Delete("/:cardId", cardHandler.Delete, middleware.ValidateObjectID(v, "cardId"))
	cards.Put("/:cardId/likes", cardHandler.Like, middleware.ValidateObjectID(v, "cardId"))
	cards.Delete("/:cardId/likes", cardHandler.Unlike, middleware.ValidateObjectID(v, "cardId"))

	// Несуществующие маршруты.
	app.Use(func(_ fiber.Ctx) error {
		return apperr.NotFound(apperr.MsgRouteNotFound)
	})
}
