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

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	About     string             `bson:"about"`
	Avatar    string             `bson:"avatar"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *userDocument) toEntity() *entities.User {
	return &entities.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		About:        d.About,
		Avatar:       d.Avatar,
		Email:        d.Email,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
	}
}

var withoutPassword = bson.D{{Key: "password", Value: 0}}

// UserRepository реализует repositories.UserRepository для MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(db *mongo.Database) repositories.UserRepository {
	return &UserRepository{coll: db.Collection(UsersCollection)}
}

// EnsureUserIndexes создает уникальный индекс по email.
func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("creating users email index: %w", err)
	}
	return nil
}

// Create сохраняет нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	if err := user.Validate(); err != nil {
		return nil, err
	}

	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Name:      user.Name,
		About:     user.About,
		Avatar:    user.Avatar,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Debug(ctx, "duplicate email", zap.String("email", user.Email))
			return nil, entities.ErrEmailAlreadyExists
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	created := doc.toEntity()
	created.PasswordHash = ""
	return created, nil
}

// FindAll возвращает всех пользователей без хэшей паролей.
func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindAll"))

	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetProjection(withoutPassword))
	if err != nil {
		log.Error(ctx, "error listing users", zap.Error(err))
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Error(ctx, "error decoding users", zap.Error(err))
		return nil, fmt.Errorf("error decoding users: %w", err)
	}

	users := make([]*entities.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toEntity())
	}
	return users, nil
}

// FindByID находит пользователя по идентификатору.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc userDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}, options.FindOne().SetProjection(withoutPassword)).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return doc.toEntity(), nil
}

// FindByEmail находит пользователя по email вместе с хэшем пароля.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	var doc userDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return doc.toEntity(), nil
}

// UpdateProfile обновляет имя и описание.
func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, about string) (*entities.User, error) {
	if !entities.ValidUserName(name) || !entities.ValidUserAbout(about) {
		return nil, entities.ErrInvalidData
	}
	return r.update(ctx, "UpdateProfile", id, bson.D{
		{Key: "name", Value: name},
		{Key: "about", Value: about},
	})
}

// UpdateAvatar обновляет ссылку на аватар.
func (r *UserRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*entities.User, error) {
	if !entities.ValidURL(avatar) {
		return nil, entities.ErrInvalidData
	}
	return r.update(ctx, "UpdateAvatar", id, bson.D{{Key: "avatar", Value: avatar}})
}

func (r *UserRepository) update(ctx context.Context, method, id string, set bson.D) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutPassword)

	var doc userDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			log.Debug(ctx, "user not found for update", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error updating user", zap.Error(err))
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return doc.toEntity(), nil
}
