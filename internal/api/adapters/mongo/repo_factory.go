package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"mesto/internal/api/ports/repositories"
)

// RepositoryFactory создает репозитории поверх одной базы MongoDB.
type RepositoryFactory struct {
	db *mongo.Database
}

// NewRepositoryFactory создает фабрику репозиториев.
func NewRepositoryFactory(db *mongo.Database) *RepositoryFactory {
	return &RepositoryFactory{db: db}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.db)
}

// CardRepository возвращает репозиторий карточек.
func (f *RepositoryFactory) CardRepository() repositories.CardRepository {
	return NewCardRepository(f.db)
}
