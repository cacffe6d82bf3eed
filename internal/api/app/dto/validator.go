// Package dto содержит объекты передачи данных HTTP API.
package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"mesto/internal/api/domain/entities"
)

// Теги правил валидации. Каждое правило опирается на ограничение из entities.
const (
	TagUserName = "username"
	TagAbout    = "about"
	TagCardName = "cardname"
	TagLink     = "link"
	TagObjectID = "objectid"
	TagMail     = "mail"
	TagPassword = "password"
)

var rules = map[string]func(string) bool{
	TagUserName: entities.ValidUserName,
	TagAbout:    entities.ValidUserAbout,
	TagCardName: entities.ValidCardName,
	TagLink:     entities.ValidURL,
	TagObjectID: entities.ValidObjectID,
	TagMail:     entities.ValidEmail,
	TagPassword: entities.ValidPassword,
}

// NewValidator создает валидатор с правилами домена.
// Имена полей в ошибках берутся из json-тегов.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	for tag, rule := range rules {
		check := rule
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}

	return v
}
