package entities

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Ограничения полей. И валидация входящих запросов, и хранилища опираются только на них.
const (
	UserNameMinLen  = 2
	UserNameMaxLen  = 30
	UserAboutMinLen = 2
	UserAboutMaxLen = 200
	CardNameMinLen  = 2
	CardNameMaxLen  = 30

	ObjectIDLen = 24

	// PasswordMaxBytes - предел bcrypt, более длинный пароль нельзя захэшировать.
	PasswordMaxBytes = 72
	// EmailMinDomainLabels - минимальное число частей домена почты: "example.com", но не "localhost".
	EmailMinDomainLabels = 2
)

// Значения по умолчанию для профиля нового пользователя.
const (
	DefaultUserName   = "Жак-Ив Кусто"
	DefaultUserAbout  = "Исследователь"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

var (
	urlPattern      = regexp.MustCompile(`^https?://(www\.)?[a-zA-Z0-9\-._~:/?#\[\]@!$&'()*+,;=]+#?$`)
	objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

func lengthBetween(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(s)
	return n >= minLen && n <= maxLen
}

// ValidUserName проверяет имя пользователя.
func ValidUserName(s string) bool { return lengthBetween(s, UserNameMinLen, UserNameMaxLen) }

// ValidUserAbout проверяет поле "о себе".
func ValidUserAbout(s string) bool { return lengthBetween(s, UserAboutMinLen, UserAboutMaxLen) }

// ValidCardName проверяет название карточки.
func ValidCardName(s string) bool { return lengthBetween(s, CardNameMinLen, CardNameMaxLen) }

// ValidURL проверяет ссылку на аватар или изображение карточки.
func ValidURL(s string) bool { return urlPattern.MatchString(s) }

// ValidObjectID проверяет, что строка состоит ровно из 24 шестнадцатеричных символов.
func ValidObjectID(s string) bool { return objectIDPattern.MatchString(s) }

// ValidEmail проверяет формат адреса почты. Домен должен состоять хотя бы из двух частей.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	domain := s[strings.LastIndexByte(s, '@')+1:]
	labels := strings.Split(domain, ".")
	if len(labels) < EmailMinDomainLabels {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
	}
	return true
}

// ValidPassword проверяет, что пароль непустой и помещается в предел bcrypt.
func ValidPassword(s string) bool { return s != "" && len(s) <= PasswordMaxBytes }
