package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mesto/internal/api/domain/entities"
)

func TestConstraints(t *testing.T) {
	t.Run("user name counts runes", func(t *testing.T) {
		assert.True(t, entities.ValidUserName(entities.DefaultUserName))
		assert.True(t, entities.ValidUserName("Яя"))
		assert.False(t, entities.ValidUserName("Я"))
		assert.False(t, entities.ValidUserName(strings.Repeat("я", 31)))
	})

	t.Run("about bounds", func(t *testing.T) {
		assert.True(t, entities.ValidUserAbout(strings.Repeat("a", 200)))
		assert.False(t, entities.ValidUserAbout(strings.Repeat("a", 201)))
		assert.False(t, entities.ValidUserAbout("a"))
	})

	t.Run("card name bounds", func(t *testing.T) {
		assert.True(t, entities.ValidCardName("ab"))
		assert.True(t, entities.ValidCardName(strings.Repeat("b", 30)))
		assert.False(t, entities.ValidCardName("a"))
		assert.False(t, entities.ValidCardName(strings.Repeat("b", 31)))
	})

	t.Run("url pattern", func(t *testing.T) {
		assert.True(t, entities.ValidURL(entities.DefaultUserAvatar))
		assert.True(t, entities.ValidURL("http://www.example.com/a.png#"))
		assert.False(t, entities.ValidURL("ftp://example.com/a.png"))
		assert.False(t, entities.ValidURL("https://exa mple.com"))
		assert.False(t, entities.ValidURL(""))
	})

	t.Run("object id", func(t *testing.T) {
		assert.True(t, entities.ValidObjectID("5f8d0d55b54764421b7156c9"))
		assert.False(t, entities.ValidObjectID("5f8d0d55b54764421b7156c"))
		assert.False(t, entities.ValidObjectID("zz8d0d55b54764421b7156c9"))
	})

	t.Run("email", func(t *testing.T) {
		assert.True(t, entities.ValidEmail("user@example.com"))
		assert.False(t, entities.ValidEmail("user"))
		assert.False(t, entities.ValidEmail("User <user@example.com>"))
		assert.False(t, entities.ValidEmail("user@localhost"))
		assert.False(t, entities.ValidEmail("user@example."))
		assert.True(t, entities.ValidEmail("user@mail.example.com"))
	})

	t.Run("password counts bytes", func(t *testing.T) {
		assert.True(t, entities.ValidPassword("secret"))
		assert.True(t, entities.ValidPassword(strings.Repeat("a", entities.PasswordMaxBytes)))
		assert.False(t, entities.ValidPassword(strings.Repeat("a", entities.PasswordMaxBytes+1)))
		assert.False(t, entities.ValidPassword(strings.Repeat("я", 37)), "37 runes take 74 bytes")
		assert.False(t, entities.ValidPassword(""))
	})
}

func TestUser(t *testing.T) {
	u := &entities.User{Email: "user@example.com"}
	u.ApplyDefaults()

	assert.Equal(t, entities.DefaultUserName, u.Name)
	assert.Equal(t, entities.DefaultUserAbout, u.About)
	assert.Equal(t, entities.DefaultUserAvatar, u.Avatar)
	assert.NoError(t, u.Validate())

	u.Name = "x"
	assert.ErrorIs(t, u.Validate(), entities.ErrInvalidData)
}

func TestCard(t *testing.T) {
	c := &entities.Card{
		Name:  "Архыз",
		Link:  "https://pictures.s3.yandex.net/frontend-developer/cards-compressed/arkhyz.jpg",
		Owner: "5f8d0d55b54764421b7156c9",
		Likes: []string{"5f8d0d55b54764421b7156ca"},
	}

	assert.NoError(t, c.Validate())

	c.Owner = "nope"
	assert.ErrorIs(t, c.Validate(), entities.ErrInvalidData)
}
