package dto

import (
	"time"

	"mesto/internal/api/domain/entities"
)

// CreateCardRequest содержит данные новой карточки.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,cardname"`
	Link string `json:"link" validate:"required,link"`
}

// CardResponse - представление карточки.
type CardResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCardResponse строит ответ из сущности. Likes всегда сериализуется массивом.
func NewCardResponse(c *entities.Card) CardResponse {
	likes := c.Likes
	if likes == nil {
		likes = []string{}
	}
	return CardResponse{
		ID:        c.ID,
		Name:      c.Name,
		Link:      c.Link,
		Owner:     c.Owner,
		Likes:     likes,
		CreatedAt: c.CreatedAt,
	}
}

// NewCardListResponse строит список карточек.
func NewCardListResponse(cards []*entities.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, NewCardResponse(c))
	}
	return out
}

// MessageResponse - ответ из одного сообщения, в том числе об ошибке.
type MessageResponse struct {
	Message string `json:"message"`
}
