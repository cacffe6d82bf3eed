package postgres

import (
	"mesto/internal/api/ports/repositories"
)

// RepositoryFactory создает репозитории поверх одного пула соединений.
type RepositoryFactory struct {
	pool Pool
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool Pool) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.pool)
}

// CardRepository возвращает репозиторий карточек.
func (f *RepositoryFactory) CardRepository() repositories.CardRepository {
	return NewCardRepository(f.pool)
}
