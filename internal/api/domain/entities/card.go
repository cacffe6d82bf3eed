package entities

import (
	"errors"
	"time"
)

// Ошибки домена карточек.
var (
	ErrCardNotFound = errors.New("card not found")
	ErrNotCardOwner = errors.New("card belongs to another user")
)

// Card представляет карточку с фотографией.
type Card struct {
	ID        string
	Name      string
	Link      string
	Owner     string
	Likes     []string
	CreatedAt time.Time
}

// Validate проверяет поля карточки.
func (c *Card) Validate() error {
	if !ValidCardName(c.Name) || !ValidURL(c.Link) || !ValidObjectID(c.Owner) {
		return ErrInvalidData
	}
	return nil
}
