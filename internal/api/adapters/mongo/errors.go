// Package mongo реализует репозитории на MongoDB.
package mongo

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mesto/internal/api/domain/entities"
)

// Имена коллекций.
const (
	UsersCollection = "users"
	CardsCollection = "cards"
)

// objectID разбирает идентификатор. Ошибка разбора соответствует CastError хранилища.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", entities.ErrInvalidID, id)
	}
	return oid, nil
}

func objectIDs(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
