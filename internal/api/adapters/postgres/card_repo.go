package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"mesto/internal/api/domain/entities"
	"mesto/internal/api/ports/repositories"
	"mesto/pkg/logger"
)

const (
	insertCardSQL = `INSERT INTO cards (id, name, link, owner_id) VALUES ($1, $2, $3, $4) RETURNING created_at`

	selectCardsSQL = `SELECT c.id, c.name, c.link, c.owner_id, c.created_at,
		COALESCE(array_agg(l.user_id ORDER BY l.created_at) FILTER (WHERE l.user_id IS NOT NULL), '{}') AS likes
		FROM cards c LEFT JOIN card_likes l ON l.card_id = c.id
		GROUP BY c.id ORDER BY c.created_at`

	selectCardSQL = `SELECT c.id, c.name, c.link, c.owner_id, c.created_at,
		COALESCE(array_agg(l.user_id ORDER BY l.created_at) FILTER (WHERE l.user_id IS NOT NULL), '{}') AS likes
		FROM cards c LEFT JOIN card_likes l ON l.card_id = c.id
		WHERE c.id = $1 GROUP BY c.id`

	deleteOwnedCardSQL = `DELETE FROM cards WHERE id = $1 AND owner_id = $2`

	selectCardOwnerSQL = `SELECT owner_id FROM cards WHERE id = $1`

	insertLikeSQL = `INSERT INTO card_likes (card_id, user_id)
		SELECT $1, $2 WHERE EXISTS (SELECT 1 FROM cards WHERE id = $1)
		ON CONFLICT (card_id, user_id) DO NOTHING`

	deleteLikeSQL = `DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`
)

// CardRepository реализует repositories.CardRepository для PostgreSQL.
type CardRepository struct {
	pool Pool
}

// NewCardRepository создает репозиторий карточек.
func NewCardRepository(pool Pool) repositories.CardRepository {
	return &CardRepository{pool: pool}
}

// Create сохраняет новую карточку.
func (r *CardRepository) Create(ctx context.Context, card *entities.Card) (*entities.Card, error) {
	log := logger.Log(ctx).With(zap.String("method", "CardRepository.Create"))

	if err := card.Validate(); err != nil {
		return nil, err
	}

	created := *card
	created.ID = newID()
	created.Likes = []string{}

	err := r.pool.QueryRow(ctx, insertCardSQL, created.ID, card.Name, card.Link, card.Owner).Scan(&created.CreatedAt)
	if err != nil {
		log.Error(ctx, "failed to create card", zap.Error(err))
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	log.Debug(ctx, "card created", zap.String("cardID", created.ID))
	return &created, nil
}

// FindAll возвращает все карточки с лайками.
func (r *CardRepository) FindAll(ctx context.Context) ([]*entities.Card, error) {
	log := logger.Log(ctx).With(zap.String("method", "CardRepository.FindAll"))

	rows, err := r.pool.Query(ctx, selectCardsSQL)
	if err != nil {
		log.Error(ctx, "failed to list cards", zap.Error(err))
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	cards := make([]*entities.Card, 0)
	for rows.Next() {
		var c entities.Card
		if err := rows.Scan(&c.ID, &c.Name, &c.Link, &c.Owner, &c.CreatedAt, &c.Likes); err != nil {
			log.Error(ctx, "failed to scan card", zap.Error(err))
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, &c)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return cards, nil
}

// DeleteOwned удаляет карточку одним условным DELETE по id и владельцу.
// При нуле удаленных строк чтение владельца различает "нет карточки" и "чужая карточка".
func (r *CardRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("method", "CardRepository.DeleteOwned"))

	id, err := normalizeID(id)
	if err != nil {
		return err
	}
	ownerID, err = normalizeID(ownerID)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, deleteOwnedCardSQL, id, ownerID)
	if err != nil {
		log.Error(ctx, "failed to delete card", zap.Error(err))
		return fmt.Errorf("failed to delete card: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var owner string
	err = r.pool.QueryRow(ctx, selectCardOwnerSQL, id).Scan(&owner)
	switch {
	case err == nil:
		log.Debug(ctx, "card owned by another user", zap.String("cardID", id), zap.String("owner", owner))
		return entities.ErrNotCardOwner
	case errors.Is(err, pgx.ErrNoRows):
		log.Debug(ctx, "card not found", zap.String("cardID", id))
		return entities.ErrCardNotFound
	default:
		log.Error(ctx, "failed to check card owner", zap.Error(err))
		return fmt.Errorf("failed to check card owner: %w", err)
	}
}

// AddLike добавляет лайк. Повторная вставка игнорируется.
func (r *CardRepository) AddLike(ctx context.Context, id, userID string) (*entities.Card, error) {
	return r.changeLikes(ctx, "AddLike", insertLikeSQL, id, userID)
}

// RemoveLike удаляет лайк, если он есть.
func (r *CardRepository) RemoveLike(ctx context.Context, id, userID string) (*entities.Card, error) {
	return r.changeLikes(ctx, "RemoveLike", deleteLikeSQL, id, userID)
}

func (r *CardRepository) changeLikes(ctx context.Context, method, sql, id, userID string) (*entities.Card, error) {
	log := logger.Log(ctx).With(zap.String("method", "CardRepository."+method))

	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	userID, err = normalizeID(userID)
	if err != nil {
		return nil, err
	}

	var card entities.Card
	err = withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sql, id, userID); err != nil {
			return fmt.Errorf("failed to change likes: %w", err)
		}
		return tx.QueryRow(ctx, selectCardSQL, id).
			Scan(&card.ID, &card.Name, &card.Link, &card.Owner, &card.CreatedAt, &card.Likes)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "card not found", zap.String("cardID", id))
			return nil, entities.ErrCardNotFound
		}
		log.Error(ctx, "failed to change likes", zap.Error(err))
		return nil, fmt.Errorf("failed to change likes: %w", err)
	}

	return &card, nil
}
