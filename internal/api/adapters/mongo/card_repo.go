package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"mesto/internal/api/domain/entities"
	"mesto/internal/api/ports/repositories"
	"mesto/pkg/logger"
)

type cardDocument struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Name      string               `bson:"name"`
	Link      string               `bson:"link"`
	Owner     primitive.ObjectID   `bson:"owner"`
	Likes     []primitive.ObjectID `bson:"likes"`
	CreatedAt time.Time            `bson:"createdAt"`
}

func (d *cardDocument) toEntity() *entities.Card {
	return &entities.Card{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Link:      d.Link,
		Owner:     d.Owner.Hex(),
		Likes:     objectIDs(d.Likes),
		CreatedAt: d.CreatedAt,
	}
}

// CardRepository реализует repositories.CardRepository для MongoDB.
type CardRepository struct {
	coll *mongo.Collection
}

// NewCardRepository создает репозиторий карточек.
func NewCardRepository(db *mongo.Database) repositories.CardRepository {
	return &CardRepository{coll: db.Collection(CardsCollection)}
}

// Create сохраняет новую карточку с пустым списком лайков.
func (r *CardRepository) Create(ctx context.Context, card *entities.Card) (*entities.Card, error) {
	log := logger.Log(ctx).With(zap.String("repository", "card"), zap.String("method", "Create"))

	if err := card.Validate(); err != nil {
		return nil, err
	}

	owner, err := objectID(card.Owner)
	if err != nil {
		return nil, err
	}

	doc := cardDocument{
		ID:        primitive.NewObjectID(),
		Name:      card.Name,
		Link:      card.Link,
		Owner:     owner,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		log.Error(ctx, "error creating card", zap.Error(err))
		return nil, fmt.Errorf("error creating card: %w", err)
	}

	return doc.toEntity(), nil
}

// FindAll возвращает все карточки.
func (r *CardRepository) FindAll(ctx context.Context) ([]*entities.Card, error) {
	log := logger.Log(ctx).With(zap.String("repository", "card"), zap.String("method", "FindAll"))

	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		log.Error(ctx, "error listing cards", zap.Error(err))
		return nil, fmt.Errorf("error listing cards: %w", err)
	}

	var docs []cardDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Error(ctx, "error decoding cards", zap.Error(err))
		return nil, fmt.Errorf("error decoding cards: %w", err)
	}

	cards := make([]*entities.Card, 0, len(docs))
	for i := range docs {
		cards = append(cards, docs[i].toEntity())
	}
	return cards, nil
}

// DeleteOwned удаляет карточку одним условным запросом по id и владельцу.
// Если ничего не удалено, повторное чтение различает "нет карточки" и "чужая карточка".
func (r *CardRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "card"), zap.String("method", "DeleteOwned"))

	oid, err := objectID(id)
	if err != nil {
		return err
	}
	owner, err := objectID(ownerID)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}, {Key: "owner", Value: owner}})
	if err != nil {
		log.Error(ctx, "error deleting card", zap.Error(err))
		return fmt.Errorf("error deleting card: %w", err)
	}
	if res.DeletedCount > 0 {
		return nil
	}

	var existing struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}},
		options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})).Decode(&existing)
	switch {
	case err == nil:
		log.Debug(ctx, "card owned by another user", zap.String("id", id), zap.String("caller", ownerID))
		return entities.ErrNotCardOwner
	case isNoDocuments(err):
		log.Debug(ctx, "card not found", zap.String("id", id))
		return entities.ErrCardNotFound
	default:
		log.Error(ctx, "error checking card after delete", zap.Error(err))
		return fmt.Errorf("error checking card: %w", err)
	}
}

// AddLike добавляет лайк через $addToSet.
func (r *CardRepository) AddLike(ctx context.Context, id, userID string) (*entities.Card, error) {
	return r.updateLikes(ctx, "AddLike", "$addToSet", id, userID)
}

// RemoveLike убирает лайк через $pull.
func (r *CardRepository) RemoveLike(ctx context.Context, id, userID string) (*entities.Card, error) {
	return r.updateLikes(ctx, "RemoveLike", "$pull", id, userID)
}

func (r *CardRepository) updateLikes(ctx context.Context, method, operator, id, userID string) (*entities.Card, error) {
	log := logger.Log(ctx).With(zap.String("repository", "card"), zap.String("method", method))

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	uid, err := objectID(userID)
	if err != nil {
		return nil, err
	}

	update := bson.D{{Key: operator, Value: bson.D{{Key: "likes", Value: uid}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc cardDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			log.Debug(ctx, "card not found", zap.String("id", id))
			return nil, entities.ErrCardNotFound
		}
		log.Error(ctx, "error updating likes", zap.Error(err))
		return nil, fmt.Errorf("error updating likes: %w", err)
	}

	return doc.toEntity(), nil
}
