package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	repo "mesto/internal/api/adapters/mongo"
	"mesto/internal/api/domain/entities"
)

func newMockDeployment(t *testing.T) *mtest.T {
	t.Helper()
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func ns(mt *mtest.T, coll string) string {
	return mt.DB.Name() + "." + coll
}

func userDoc(id primitive.ObjectID, name string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "about", Value: "Исследователь"},
		{Key: "avatar", Value: "https://example.com/a.png"},
		{Key: "email", Value: "user@example.com"},
		{Key: "createdAt", Value: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func validUser() *entities.User {
	return &entities.User{
		Name:         "Жак-Ив Кусто",
		About:        "Исследователь",
		Avatar:       "https://example.com/a.png",
		Email:        "user@example.com",
		PasswordHash: "$2a$10$hash",
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	mt := newMockDeployment(t)

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created, err := repo.NewUserRepository(mt.DB).Create(context.Background(), validUser())
		require.NoError(t, err)
		assert.Len(t, created.ID, entities.ObjectIDLen)
		assert.Equal(t, "user@example.com", created.Email)
		assert.Empty(t, created.PasswordHash)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: mestodb.users index: email_unique",
		}))

		created, err := repo.NewUserRepository(mt.DB).Create(context.Background(), validUser())
		require.ErrorIs(t, err, entities.ErrEmailAlreadyExists)
		assert.Nil(t, created)
	})

	mt.Run("invalid entity is rejected before insert", func(mt *mtest.T) {
		user := validUser()
		user.Name = "x"

		created, err := repo.NewUserRepository(mt.DB).Create(context.Background(), user)
		require.ErrorIs(t, err, entities.ErrInvalidData)
		assert.Nil(t, created)
	})
}

func TestUserRepositoryFindAll(t *testing.T) {
	mt := newMockDeployment(t)

	mt.Run("returns all users", func(mt *mtest.T) {
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, repo.UsersCollection), mtest.FirstBatch,
			userDoc(first, "Первый"), userDoc(second, "Второй")))

		users, err := repo.NewUserRepository(mt.DB).FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, first.Hex(), users[0].ID)
		assert.Equal(t, "Второй", users[1].Name)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, repo.UsersCollection), mtest.FirstBatch))

		users, err := repo.NewUserRepository(mt.DB).FindAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestUserRepositoryFindByID(t *testing.T) {
	mt := newMockDeployment(t)

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, repo.UsersCollection), mtest.FirstBatch, userDoc(id, "Кусто")))

		user, err := repo.NewUserRepository(mt.DB).FindByID(context.Background(), id.Hex())
		require.NoError(t, err)
		assert.Equal(t, id.Hex(), user.ID)
		assert.Equal(t, "Кусто", user.Name)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, repo.UsersCollection), mtest.FirstBatch))

		user, err := repo.NewUserRepository(mt.DB).FindByID(context.Background(), primitive.NewObjectID().Hex())
		require.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		user, err := repo.NewUserRepository(mt.DB).FindByID(context.Background(), "zzz")
		require.ErrorIs(t, err, entities.ErrInvalidID)
		assert.Nil(t, user)
	})
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	mt := newMockDeployment(t)

	mt.Run("returns password hash", func(mt *mtest.T) {
		doc := append(userDoc(primitive.NewObjectID(), "Кусто"), bson.E{Key: "password", Value: "$2a$10$hash"})
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, repo.UsersCollection), mtest.FirstBatch, doc))

		user, err := repo.NewUserRepository(mt.DB).FindByEmail(context.Background(), "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, repo.UsersCollection), mtest.FirstBatch))

		_, err := repo.NewUserRepository(mt.DB).FindByEmail(context.Background(), "ghost@example.com")
		require.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

func TestUserRepositoryUpdate(t *testing.T) {
	mt := newMockDeployment(t)

	mt.Run("profile updated", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: userDoc(id, "Новое имя")}))

		user, err := repo.NewUserRepository(mt.DB).UpdateProfile(context.Background(), id.Hex(), "Новое имя", "Исследователь")
		require.NoError(t, err)
		assert.Equal(t, "Новое имя", user.Name)
	})

	mt.Run("avatar on missing user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.NewUserRepository(mt.DB).UpdateAvatar(context.Background(), primitive.NewObjectID().Hex(), "https://example.com/b.png")
		require.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	mt.Run("name too short", func(mt *mtest.T) {
		_, err := repo.NewUserRepository(mt.DB).UpdateProfile(context.Background(), primitive.NewObjectID().Hex(), "x", "Исследователь")
		require.ErrorIs(t, err, entities.ErrInvalidData)
	})

	mt.Run("bad avatar url", func(mt *mtest.T) {
		_, err := repo.NewUserRepository(mt.DB).UpdateAvatar(context.Background(), primitive.NewObjectID().Hex(), "ftp://example.com")
		require.ErrorIs(t, err, entities.ErrInvalidData)
	})
}
