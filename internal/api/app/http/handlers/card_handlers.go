package handlers

import (
	"github.com/gofiber/fiber/v3"

	"mesto/internal/api/app/dto"
	"mesto/internal/api/app/http/middleware"
	"mesto/internal/api/ports/api"
)

// MsgCardDeleted - ответ на успешное удаление карточки.
const MsgCardDeleted = "Карточка удалена"

// CardHandler обрабатывает запросы к карточкам.
type CardHandler struct {
	cards api.CardUseCase
}

// NewCardHandler создает обработчик карточек.
func NewCardHandler(cards api.CardUseCase) *CardHandler {
	return &CardHandler{cards: cards}
}

// List возвращает все карточки.
func (h *CardHandler) List(c fiber.Ctx) error {
	cards, err := h.cards.List(middleware.RequestContext(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, dto.NewCardListResponse(cards))
}

// Create создает карточку от имени текущего пользователя.
func (h *CardHandler) Create(c fiber.Ctx) error {
	req, err := middleware.Body[dto.CreateCardRequest](c)
	if err != nil {
		return err
	}

	card, err := h.cards.Create(middleware.RequestContext(c), middleware.UserID(c), req.Name, req.Link)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, dto.NewCardResponse(card))
}

// Delete удаляет карточку текущего пользователя.
func (h *CardHandler) Delete(c fiber.Ctx) error {
	if err := h.cards.Delete(middleware.RequestContext(c), c.Params("cardId"), middleware.UserID(c)); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, dto.MessageResponse{Message: MsgCardDeleted})
}

// Like ставит лайк карточке.
func (h *CardHandler) Like(c fiber.Ctx) error {
	card, err := h.cards.Like(middleware.RequestContext(c), c.Params("cardId"), middleware.UserID(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, dto.NewCardResponse(card))
}

// Unlike снимает лайк с карточки.
func (h *CardHandler) Unlike(c fiber.Ctx) error {
	card, err := h.cards.Unlike(middleware.RequestContext(c), c.Params("cardId"), middleware.UserID(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, dto.NewCardResponse(card))
}
